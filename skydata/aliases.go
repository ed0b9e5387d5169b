package skydata

import "github.com/stargrid/stargrid"

// hipAliases maps Hipparcos identifiers to the common star names in
// everyday use, after https://www.cosmos.esa.int/web/hipparcos/common-star-names.
var hipAliases = []stargrid.NameEntry{
	{ID: 677, Name: "Alpheratz"},
	{ID: 746, Name: "Caph"},
	{ID: 1067, Name: "Algenib"},
	{ID: 2081, Name: "Ankaa"},
	{ID: 3179, Name: "Shedir"},
	{ID: 3419, Name: "Diphda"},
	{ID: 3829, Name: "Van Maanen 2"},
	{ID: 5447, Name: "Mirach"},
	{ID: 7588, Name: "Achernar"},
	{ID: 9640, Name: "Almaak"},
	{ID: 9884, Name: "Hamal"},
	{ID: 10826, Name: "Mira"},
	{ID: 11767, Name: "Polaris"},
	{ID: 13847, Name: "Acamar"},
	{ID: 14135, Name: "Menkar"},
	{ID: 14576, Name: "Algol"},
	{ID: 15863, Name: "Mirphak"},
	{ID: 17702, Name: "Alcyone"},
	{ID: 17851, Name: "Pleione"},
	{ID: 18543, Name: "Zaurak"},
	{ID: 21421, Name: "Aldebaran"},
	{ID: 24186, Name: "Kapteyn's star"},
	{ID: 24436, Name: "Rigel"},
	{ID: 24608, Name: "Capella"},
	{ID: 25336, Name: "Bellatrix"},
	{ID: 25428, Name: "Alnath"},
	{ID: 25606, Name: "Nihal"},
	{ID: 25930, Name: "Mintaka"},
	{ID: 25985, Name: "Arneb"},
	{ID: 26311, Name: "Alnilam"},
	{ID: 26727, Name: "Alnitak"},
	{ID: 27366, Name: "Saiph"},
	{ID: 27989, Name: "Betelgeuse"},
	{ID: 30089, Name: "Red Rectangle"},
	{ID: 30438, Name: "Canopus"},
	{ID: 31681, Name: "Alhena"},
	{ID: 32349, Name: "Sirius"},
	{ID: 33579, Name: "Adhara"},
	{ID: 36208, Name: "Luyten's star"},
	{ID: 36850, Name: "Castor"},
	{ID: 37279, Name: "Procyon"},
	{ID: 37826, Name: "Pollux"},
	{ID: 46390, Name: "Alphard"},
	{ID: 49669, Name: "Regulus"},
	{ID: 50583, Name: "Algieba"},
	{ID: 53910, Name: "Merak"},
	{ID: 54061, Name: "Dubhe"},
	{ID: 57632, Name: "Denebola"},
	{ID: 57939, Name: "Groombridge 1830"},
	{ID: 58001, Name: "Phad"},
	{ID: 59774, Name: "Megrez"},
	{ID: 60718, Name: "Acrux"},
	{ID: 60936, Name: "3C 273"},
	{ID: 62956, Name: "Alioth"},
	{ID: 63125, Name: "Cor Caroli"},
	{ID: 63608, Name: "Vindemiatrix"},
	{ID: 65378, Name: "Mizar"},
	{ID: 65474, Name: "Spica"},
	{ID: 65477, Name: "Alcor"},
	{ID: 67301, Name: "Alkaid"},
	{ID: 68702, Name: "Agena"},
	{ID: 68702, Name: "Hadar"},
	{ID: 68756, Name: "Thuban"},
	{ID: 69673, Name: "Arcturus"},
	{ID: 70890, Name: "Proxima"},
	{ID: 71683, Name: "Rigil Kent"},
	{ID: 72105, Name: "Izar"},
	{ID: 72607, Name: "Kocab"},
	{ID: 76267, Name: "Alphekka"},
	{ID: 77070, Name: "Unukalhai"},
	{ID: 80763, Name: "Antares"},
	{ID: 84345, Name: "Rasalgethi"},
	{ID: 85927, Name: "Shaula"},
	{ID: 86032, Name: "Rasalhague"},
	{ID: 87833, Name: "Etamin"},
	{ID: 87937, Name: "Barnard's star"},
	{ID: 90185, Name: "Kaus Australis"},
	{ID: 91262, Name: "Vega"},
	{ID: 92420, Name: "Sheliak"},
	{ID: 92855, Name: "Nunki"},
	{ID: 95947, Name: "Albireo"},
	{ID: 96295, Name: "Campbell's star"},
	{ID: 97278, Name: "Tarazed"},
	{ID: 97649, Name: "Altair"},
	{ID: 98036, Name: "Alshain"},
	{ID: 98298, Name: "Cyg X-1"},
	{ID: 102098, Name: "Deneb"},
	{ID: 105199, Name: "Alderamin"},
	{ID: 107315, Name: "Enif"},
	{ID: 109074, Name: "Sadalmelik"},
	{ID: 109268, Name: "Alnair"},
	{ID: 110893, Name: "Kruger 60"},
	{ID: 112247, Name: "Babcock's star"},
	{ID: 113368, Name: "Fomalhaut"},
	{ID: 113881, Name: "Scheat"},
	{ID: 113963, Name: "Markab"},
}
