package skydata

import (
	"github.com/stargrid/stargrid"
	"github.com/stargrid/stargrid/geom"
)

// brightStars holds Hipparcos main-catalog values for the brightest
// naked-eye stars: identifier, position in degrees (ICRS, epoch J1991.25),
// distance in light years (3261.56 / parallax in mas), apparent visual
// magnitude and B-V color index.
type brightStar struct {
	hip   stargrid.StarID
	raDeg float64
	deDeg float64
	ly    float32
	vmag  float32
	bv    float32
}

var brightStars = []brightStar{
	{hip: 677, raDeg: 2.09691620, deDeg: 29.09043111, ly: 97.1, vmag: 2.07, bv: -0.038},
	{hip: 746, raDeg: 2.29452158, deDeg: 59.14977959, ly: 54.5, vmag: 2.28, bv: 0.380},
	{hip: 1067, raDeg: 3.30896346, deDeg: 15.18359306, ly: 333.2, vmag: 2.83, bv: -0.190},
	{hip: 2081, raDeg: 6.57104743, deDeg: -42.30598240, ly: 77.4, vmag: 2.40, bv: 1.083},
	{hip: 3179, raDeg: 10.12683778, deDeg: 56.53733109, ly: 228.6, vmag: 2.24, bv: 1.170},
	{hip: 3419, raDeg: 10.89737875, deDeg: -17.98660632, ly: 95.8, vmag: 2.04, bv: 1.019},
	{hip: 5447, raDeg: 17.43301617, deDeg: 35.62055764, ly: 199.4, vmag: 2.07, bv: 1.576},
	{hip: 7588, raDeg: 24.42852283, deDeg: -57.23675281, ly: 143.8, vmag: 0.45, bv: -0.158},
	{hip: 9884, raDeg: 31.79335719, deDeg: 23.46241755, ly: 65.9, vmag: 2.01, bv: 1.151},
	{hip: 11767, raDeg: 37.94614689, deDeg: 89.26413805, ly: 431.4, vmag: 1.97, bv: 0.636},
	{hip: 14576, raDeg: 47.04221016, deDeg: 40.95564674, ly: 92.8, vmag: 2.09, bv: -0.003},
	{hip: 15863, raDeg: 51.08070872, deDeg: 49.86117959, ly: 591.9, vmag: 1.79, bv: 0.481},
	{hip: 17702, raDeg: 56.87115313, deDeg: 24.10513717, ly: 367.7, vmag: 2.85, bv: -0.063},
	{hip: 21421, raDeg: 68.98016279, deDeg: 16.50930235, ly: 65.1, vmag: 0.87, bv: 1.538},
	{hip: 24436, raDeg: 78.63446707, deDeg: -8.20163836, ly: 772.9, vmag: 0.18, bv: -0.030},
	{hip: 24608, raDeg: 79.17232794, deDeg: 45.99799147, ly: 42.2, vmag: 0.08, bv: 0.795},
	{hip: 25336, raDeg: 81.28276356, deDeg: 6.34970223, ly: 243.0, vmag: 1.64, bv: -0.224},
	{hip: 25930, raDeg: 83.00166562, deDeg: -0.29909340, ly: 916.2, vmag: 2.25, bv: -0.175},
	{hip: 26207, raDeg: 83.78449680, deDeg: 9.93416294, ly: 433.7, vmag: 3.39, bv: -0.160},
	{hip: 26311, raDeg: 84.05338894, deDeg: -1.20191725, ly: 1342.2, vmag: 1.69, bv: -0.184},
	{hip: 26727, raDeg: 85.18969388, deDeg: -1.94257841, ly: 817.4, vmag: 1.74, bv: -0.199},
	{hip: 27366, raDeg: 86.93911919, deDeg: -9.66960500, ly: 721.6, vmag: 2.07, bv: -0.168},
	{hip: 27989, raDeg: 88.79293899, deDeg: 7.40706400, ly: 427.5, vmag: 0.45, bv: 1.500},
	{hip: 28360, raDeg: 89.88217930, deDeg: 44.94743278, ly: 82.1, vmag: 1.90, bv: 0.077},
	{hip: 30324, raDeg: 95.67493897, deDeg: -17.95591658, ly: 499.5, vmag: 1.98, bv: -0.240},
	{hip: 30438, raDeg: 95.98787790, deDeg: -52.69566138, ly: 312.7, vmag: -0.62, bv: 0.164},
	{hip: 32349, raDeg: 101.28715539, deDeg: -16.71611582, ly: 8.6, vmag: -1.44, bv: 0.009},
	{hip: 33579, raDeg: 104.65645313, deDeg: -28.97208931, ly: 430.9, vmag: 1.50, bv: -0.211},
	{hip: 34444, raDeg: 107.09785005, deDeg: -26.39320776, ly: 1792.1, vmag: 1.83, bv: 0.671},
	{hip: 36850, raDeg: 113.64947164, deDeg: 31.88828222, ly: 51.5, vmag: 1.58, bv: 0.034},
	{hip: 37279, raDeg: 114.82549791, deDeg: 5.22498756, ly: 11.4, vmag: 0.40, bv: 0.432},
	{hip: 37826, raDeg: 116.32895777, deDeg: 28.02619889, ly: 33.7, vmag: 1.16, bv: 0.991},
	{hip: 39429, raDeg: 120.89603145, deDeg: -40.00314769, ly: 1399.8, vmag: 2.21, bv: -0.269},
	{hip: 41037, raDeg: 125.62848035, deDeg: -59.50948302, ly: 632.1, vmag: 1.86, bv: 1.277},
	{hip: 44816, raDeg: 136.99899232, deDeg: -43.43259050, ly: 573.2, vmag: 2.23, bv: 1.665},
	{hip: 45238, raDeg: 138.29990602, deDeg: -69.71720773, ly: 111.2, vmag: 1.67, bv: 0.070},
	{hip: 46390, raDeg: 141.89684458, deDeg: -8.65860253, ly: 177.3, vmag: 1.99, bv: 1.440},
	{hip: 49669, raDeg: 152.09296244, deDeg: 11.96720878, ly: 77.5, vmag: 1.36, bv: -0.087},
	{hip: 50583, raDeg: 154.99309993, deDeg: 19.84148875, ly: 125.6, vmag: 2.01, bv: 1.128},
	{hip: 53910, raDeg: 165.46031867, deDeg: 56.38243026, ly: 79.4, vmag: 2.34, bv: 0.033},
	{hip: 54061, raDeg: 165.93196467, deDeg: 61.75103469, ly: 123.6, vmag: 1.81, bv: 1.061},
	{hip: 57632, raDeg: 177.26490975, deDeg: 14.57205806, ly: 36.2, vmag: 2.14, bv: 0.090},
	{hip: 58001, raDeg: 178.45769714, deDeg: 53.69476008, ly: 83.7, vmag: 2.41, bv: 0.044},
	{hip: 59774, raDeg: 183.85650251, deDeg: 57.03261544, ly: 81.4, vmag: 3.32, bv: 0.077},
	{hip: 60718, raDeg: 186.64963300, deDeg: -63.09909286, ly: 320.7, vmag: 0.77, bv: -0.240},
	{hip: 61084, raDeg: 187.79149810, deDeg: -57.11321346, ly: 87.9, vmag: 1.59, bv: 1.600},
	{hip: 62434, raDeg: 191.93028881, deDeg: -59.68877139, ly: 352.6, vmag: 1.25, bv: -0.238},
	{hip: 62956, raDeg: 193.50728946, deDeg: 55.95982286, ly: 80.9, vmag: 1.76, bv: -0.022},
	{hip: 63608, raDeg: 195.54425188, deDeg: 10.95914853, ly: 102.2, vmag: 2.85, bv: 0.934},
	{hip: 65378, raDeg: 200.98141867, deDeg: 54.92535197, ly: 78.2, vmag: 2.23, bv: 0.057},
	{hip: 65474, raDeg: 201.29824736, deDeg: -11.16131949, ly: 262.2, vmag: 0.98, bv: -0.235},
	{hip: 67301, raDeg: 206.88515734, deDeg: 49.31326673, ly: 100.7, vmag: 1.85, bv: -0.099},
	{hip: 68702, raDeg: 210.95585510, deDeg: -60.37303516, ly: 153.5, vmag: 0.61, bv: -0.231},
	{hip: 69673, raDeg: 213.91530030, deDeg: 19.18240916, ly: 36.7, vmag: -0.05, bv: 1.239},
	{hip: 71683, raDeg: 219.90205833, deDeg: -60.83399269, ly: 4.4, vmag: -0.01, bv: 0.710},
	{hip: 72607, raDeg: 222.67635750, deDeg: 74.15550394, ly: 126.5, vmag: 2.07, bv: 1.465},
	{hip: 76267, raDeg: 233.67195005, deDeg: 26.71469278, ly: 74.7, vmag: 2.22, bv: 0.028},
	{hip: 77070, raDeg: 236.06697164, deDeg: 6.42551971, ly: 73.2, vmag: 2.63, bv: 1.167},
	{hip: 80763, raDeg: 247.35191542, deDeg: -26.43200250, ly: 604.0, vmag: 1.06, bv: 1.865},
	{hip: 84012, raDeg: 257.59451787, deDeg: -15.72490664, ly: 84.1, vmag: 2.43, bv: 0.059},
	{hip: 85927, raDeg: 263.40216606, deDeg: -37.10382115, ly: 702.9, vmag: 1.62, bv: -0.231},
	{hip: 86032, raDeg: 263.73362267, deDeg: 12.56057584, ly: 46.7, vmag: 2.08, bv: 0.155},
	{hip: 87833, raDeg: 269.15154097, deDeg: 51.48889497, ly: 147.6, vmag: 2.24, bv: 1.521},
	{hip: 90185, raDeg: 276.04299929, deDeg: -34.38461611, ly: 144.6, vmag: 1.79, bv: -0.031},
	{hip: 91262, raDeg: 279.23473479, deDeg: 38.78368896, ly: 25.3, vmag: 0.03, bv: -0.001},
	{hip: 97649, raDeg: 297.69582730, deDeg: 8.86832120, ly: 16.8, vmag: 0.76, bv: 0.221},
	{hip: 100751, raDeg: 306.41190437, deDeg: -56.73508972, ly: 183.2, vmag: 1.94, bv: -0.118},
	{hip: 102098, raDeg: 310.35797975, deDeg: 45.28033881, ly: 3229.3, vmag: 1.25, bv: 0.092},
	{hip: 109268, raDeg: 332.05826934, deDeg: -46.96097348, ly: 101.4, vmag: 1.73, bv: -0.070},
	{hip: 113368, raDeg: 344.41269272, deDeg: -29.62223703, ly: 25.1, vmag: 1.17, bv: 0.145},
	{hip: 113881, raDeg: 345.94357124, deDeg: 28.08278879, ly: 199.2, vmag: 2.44, bv: 1.655},
	{hip: 113963, raDeg: 346.19022297, deDeg: 15.20526715, ly: 139.6, vmag: 2.49, bv: -0.002},
}

// BrightStars returns the bright-star table as catalog-ready star data,
// positions converted to radians. The slice is freshly allocated; callers
// may reorder it freely.
func BrightStars() []stargrid.StarData {
	data := make([]stargrid.StarData, len(brightStars))
	for i, b := range brightStars {
		data[i] = stargrid.StarData{
			ID:         b.hip,
			Ra:         geom.DegToRad(b.raDeg),
			De:         geom.DegToRad(b.deDeg),
			Distance:   b.ly,
			Brightness: b.vmag,
			ColorIndex: b.bv,
		}
	}
	return data
}
