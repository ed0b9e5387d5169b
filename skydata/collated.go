package skydata

import "github.com/stargrid/stargrid"

// hipCollatedAliases is the full IAU-collated name table: every officially
// named star with a Hipparcos identifier. A star may carry several names.
var hipCollatedAliases = []stargrid.NameEntry{
	{ID: 60936, Name: "3C 273"},
	{ID: 13847, Name: "Acamar"},
	{ID: 7588, Name: "Achernar"},
	{ID: 3821, Name: "Achird"},
	{ID: 78820, Name: "Acrab"},
	{ID: 60718, Name: "Acrux"},
	{ID: 44066, Name: "Acubens"},
	{ID: 50335, Name: "Adhafera"},
	{ID: 33579, Name: "Adhara"},
	{ID: 6411, Name: "Adhil"},
	{ID: 68702, Name: "Agena"},
	{ID: 20889, Name: "Ain"},
	{ID: 92761, Name: "Ainalrami"},
	{ID: 94481, Name: "Aladfar"},
	{ID: 90004, Name: "Alasia"},
	{ID: 94141, Name: "Albaldah"},
	{ID: 102618, Name: "Albali"},
	{ID: 95947, Name: "Albireo"},
	{ID: 59199, Name: "Alchiba"},
	{ID: 65477, Name: "Alcor"},
	{ID: 17702, Name: "Alcyone"},
	{ID: 21421, Name: "Aldebaran"},
	{ID: 105199, Name: "Alderamin"},
	{ID: 108085, Name: "Aldhanab"},
	{ID: 83895, Name: "Aldhibah"},
	{ID: 101421, Name: "Aldulfin"},
	{ID: 106032, Name: "Alfirk"},
	{ID: 100064, Name: "Algedi"},
	{ID: 1067, Name: "Algenib"},
	{ID: 50583, Name: "Algieba"},
	{ID: 14576, Name: "Algol"},
	{ID: 60965, Name: "Algorab"},
	{ID: 31681, Name: "Alhena"},
	{ID: 62956, Name: "Alioth"},
	{ID: 102488, Name: "Aljanah"},
	{ID: 67301, Name: "Alkaid"},
	{ID: 75411, Name: "Alkalurops"},
	{ID: 44471, Name: "Alkaphrah"},
	{ID: 115623, Name: "Alkarab"},
	{ID: 53740, Name: "Alkes"},
	{ID: 9640, Name: "Almaak"},
	{ID: 23416, Name: "Almaaz"},
	{ID: 9640, Name: "Almach"},
	{ID: 109268, Name: "Alnair"},
	{ID: 88635, Name: "Alnasl"},
	{ID: 25428, Name: "Alnath"},
	{ID: 26311, Name: "Alnilam"},
	{ID: 26727, Name: "Alnitak"},
	{ID: 80112, Name: "Alniyat"},
	{ID: 46390, Name: "Alphard"},
	{ID: 76267, Name: "Alphecca"},
	{ID: 76267, Name: "Alphekka"},
	{ID: 677, Name: "Alpheratz"},
	{ID: 7097, Name: "Alpherg"},
	{ID: 83608, Name: "Alrakis"},
	{ID: 9487, Name: "Alrescha"},
	{ID: 86782, Name: "Alruba"},
	{ID: 96100, Name: "Alsafi"},
	{ID: 41075, Name: "Alsciaukat"},
	{ID: 42913, Name: "Alsephina"},
	{ID: 98036, Name: "Alshain"},
	{ID: 100310, Name: "Alshat"},
	{ID: 97649, Name: "Altair"},
	{ID: 94376, Name: "Altais"},
	{ID: 46750, Name: "Alterf"},
	{ID: 35904, Name: "Aludra"},
	{ID: 55219, Name: "Alula Borealis"},
	{ID: 92946, Name: "Alya"},
	{ID: 32362, Name: "Alzirr"},
	{ID: 29550, Name: "Amadioha"},
	{ID: 110003, Name: "Ancha"},
	{ID: 13288, Name: "Angetenar"},
	{ID: 57820, Name: "Aniara"},
	{ID: 2081, Name: "Ankaa"},
	{ID: 95771, Name: "Anser"},
	{ID: 80763, Name: "Antares"},
	{ID: 72845, Name: "Arcalís"},
	{ID: 69673, Name: "Arcturus"},
	{ID: 95294, Name: "Arkab Posterior"},
	{ID: 95241, Name: "Arkab Prior"},
	{ID: 25985, Name: "Arneb"},
	{ID: 93506, Name: "Ascella"},
	{ID: 42911, Name: "Asellus Australis"},
	{ID: 42806, Name: "Asellus Borealis"},
	{ID: 43109, Name: "Ashlesha"},
	{ID: 45556, Name: "Aspidiske"},
	{ID: 17579, Name: "Asterope"},
	{ID: 80331, Name: "Athebyne"},
	{ID: 17448, Name: "Atik"},
	{ID: 17847, Name: "Atlas"},
	{ID: 82273, Name: "Atria"},
	{ID: 41037, Name: "Avior"},
	{ID: 118319, Name: "Axólotl"},
	{ID: 13993, Name: "Ayeyarwady"},
	{ID: 107136, Name: "Azelfafage"},
	{ID: 13701, Name: "Azha"},
	{ID: 38170, Name: "Azmidi"},
	{ID: 112247, Name: "Babcock's star"},
	{ID: 73136, Name: "Baekdu"},
	{ID: 87937, Name: "Barnard's Star"},
	{ID: 8645, Name: "Baten Kaitos"},
	{ID: 20535, Name: "Beemim"},
	{ID: 19587, Name: "Beid"},
	{ID: 25336, Name: "Bellatrix"},
	{ID: 27989, Name: "Betelgeuse"},
	{ID: 13209, Name: "Bharani"},
	{ID: 48711, Name: "Bibhā"},
	{ID: 109427, Name: "Biham"},
	{ID: 107251, Name: "Bosona"},
	{ID: 14838, Name: "Botein"},
	{ID: 73714, Name: "Brachium"},
	{ID: 26380, Name: "Bubup"},
	{ID: 12191, Name: "Buna"},
	{ID: 106786, Name: "Bunda"},
	{ID: 6643, Name: "Bélénos"},
	{ID: 96295, Name: "Campbell's star"},
	{ID: 30438, Name: "Canopus"},
	{ID: 24608, Name: "Capella"},
	{ID: 746, Name: "Caph"},
	{ID: 36850, Name: "Castor"},
	{ID: 4422, Name: "Castula"},
	{ID: 86742, Name: "Cebalrai"},
	{ID: 37284, Name: "Ceibo"},
	{ID: 17489, Name: "Celaeno"},
	{ID: 86796, Name: "Cervantes"},
	{ID: 53721, Name: "Chalawan"},
	{ID: 20894, Name: "Chamukuy"},
	{ID: 61317, Name: "Chara"},
	{ID: 99894, Name: "Chechia"},
	{ID: 54879, Name: "Chertan"},
	{ID: 1547, Name: "Citadelle"},
	{ID: 33719, Name: "Citalá"},
	{ID: 3479, Name: "Cocibolca"},
	{ID: 43587, Name: "Copernicus"},
	{ID: 63125, Name: "Cor Caroli"},
	{ID: 63121, Name: "Cor Caroli 2"},
	{ID: 80463, Name: "Cujam"},
	{ID: 23875, Name: "Cursa"},
	{ID: 98298, Name: "Cyg X-1"},
	{ID: 100345, Name: "Dabih"},
	{ID: 14879, Name: "Dalim"},
	{ID: 107556, Name: "Deneb Algedi"},
	{ID: 102098, Name: "Deneb"},
	{ID: 57632, Name: "Denebola"},
	{ID: 64241, Name: "Diadem"},
	{ID: 54158, Name: "Dingolay"},
	{ID: 3419, Name: "Diphda"},
	{ID: 66047, Name: "Dofida"},
	{ID: 78401, Name: "Dschubba"},
	{ID: 54061, Name: "Dubhe"},
	{ID: 86614, Name: "Dziban"},
	{ID: 114322, Name: "Ebla"},
	{ID: 75458, Name: "Edasich"},
	{ID: 17499, Name: "Electra"},
	{ID: 70755, Name: "Elgafar"},
	{ID: 29034, Name: "Elkurud"},
	{ID: 25428, Name: "Elnath"},
	{ID: 87833, Name: "Eltanin"},
	{ID: 5529, Name: "Emiw"},
	{ID: 107315, Name: "Enif"},
	{ID: 116727, Name: "Errai"},
	{ID: 87833, Name: "Etamin"},
	{ID: 90344, Name: "Fafnir"},
	{ID: 78265, Name: "Fang"},
	{ID: 97165, Name: "Fawaris"},
	{ID: 48615, Name: "Felis"},
	{ID: 2247, Name: "Felixvarela"},
	{ID: 113368, Name: "Fomalhaut"},
	{ID: 56508, Name: "Formosa"},
	{ID: 84832, Name: "Franz"},
	{ID: 2920, Name: "Fulu"},
	{ID: 113889, Name: "Fumalsamakah"},
	{ID: 61177, Name: "Funi"},
	{ID: 30122, Name: "Furud"},
	{ID: 87261, Name: "Fuyue"},
	{ID: 61084, Name: "Gacrux"},
	{ID: 42446, Name: "Gakyid"},
	{ID: 56211, Name: "Giausar"},
	{ID: 59803, Name: "Gienah"},
	{ID: 60260, Name: "Ginan"},
	{ID: 36188, Name: "Gomeisa"},
	{ID: 57939, Name: "Groombridge 1830"},
	{ID: 87585, Name: "Grumium"},
	{ID: 77450, Name: "Gudja"},
	{ID: 84405, Name: "Guniibuu"},
	{ID: 68702, Name: "Hadar"},
	{ID: 23767, Name: "Haedus"},
	{ID: 9884, Name: "Hamal"},
	{ID: 23015, Name: "Hassaleh"},
	{ID: 26241, Name: "Hatysa"},
	{ID: 113357, Name: "Helvetios"},
	{ID: 66249, Name: "Heze"},
	{ID: 21109, Name: "Hoggar"},
	{ID: 112029, Name: "Homam"},
	{ID: 55174, Name: "Hunahpú"},
	{ID: 80076, Name: "Hunor"},
	{ID: 78104, Name: "Iklil"},
	{ID: 47087, Name: "Illyrian"},
	{ID: 59747, Name: "Imai"},
	{ID: 84787, Name: "Inquill"},
	{ID: 15578, Name: "Intan"},
	{ID: 46471, Name: "Intercrus"},
	{ID: 108375, Name: "Itonda"},
	{ID: 72105, Name: "Izar"},
	{ID: 79374, Name: "Jabbah"},
	{ID: 37265, Name: "Jishui"},
	{ID: 12706, Name: "Kaffaljidhma"},
	{ID: 47202, Name: "Kalausi"},
	{ID: 79219, Name: "Kamuy"},
	{ID: 69427, Name: "Kang"},
	{ID: 24186, Name: "Kapteyn's star"},
	{ID: 76351, Name: "Karaka"},
	{ID: 90185, Name: "Kaus Australis"},
	{ID: 90496, Name: "Kaus Borealis"},
	{ID: 89931, Name: "Kaus Media"},
	{ID: 92895, Name: "Kaveh"},
	{ID: 19849, Name: "Keid"},
	{ID: 69974, Name: "Khambalia"},
	{ID: 104987, Name: "Kitalpha"},
	{ID: 72607, Name: "Kocab"},
	{ID: 72607, Name: "Kochab"},
	{ID: 12961, Name: "Koeia"},
	{ID: 80816, Name: "Kornephoros"},
	{ID: 61359, Name: "Kraz"},
	{ID: 110893, Name: "Kruger 60"},
	{ID: 108917, Name: "Kurhah"},
	{ID: 62223, Name: "La Superba"},
	{ID: 82396, Name: "Larawag"},
	{ID: 85696, Name: "Lesath"},
	{ID: 97938, Name: "Libertas"},
	{ID: 66192, Name: "Liesma"},
	{ID: 13061, Name: "Lilii Borea"},
	{ID: 110813, Name: "Lionrock"},
	{ID: 30860, Name: "Lucilinburhuc"},
	{ID: 30905, Name: "Lusitânia"},
	{ID: 36208, Name: "Luyten's star"},
	{ID: 85693, Name: "Maasym"},
	{ID: 52521, Name: "Macondo"},
	{ID: 24003, Name: "Mago"},
	{ID: 28380, Name: "Mahasim"},
	{ID: 82651, Name: "Mahsati"},
	{ID: 17573, Name: "Maia"},
	{ID: 80883, Name: "Marfik"},
	{ID: 113963, Name: "Markab"},
	{ID: 45941, Name: "Markeb"},
	{ID: 79043, Name: "Marsic"},
	{ID: 112158, Name: "Matar"},
	{ID: 32246, Name: "Mebsuta"},
	{ID: 59774, Name: "Megrez"},
	{ID: 26207, Name: "Meissa"},
	{ID: 34088, Name: "Mekbuda"},
	{ID: 42556, Name: "Meleph"},
	{ID: 28360, Name: "Menkalinan"},
	{ID: 14135, Name: "Menkar"},
	{ID: 68933, Name: "Menkent"},
	{ID: 18614, Name: "Menkib"},
	{ID: 53910, Name: "Merak"},
	{ID: 72487, Name: "Merga"},
	{ID: 94114, Name: "Meridiana"},
	{ID: 17608, Name: "Merope"},
	{ID: 8832, Name: "Mesarthim"},
	{ID: 45238, Name: "Miaplacidus"},
	{ID: 62434, Name: "Mimosa"},
	{ID: 42402, Name: "Minchir"},
	{ID: 63090, Name: "Minelauva"},
	{ID: 25930, Name: "Mintaka"},
	{ID: 10826, Name: "Mira"},
	{ID: 5447, Name: "Mirach"},
	{ID: 13268, Name: "Miram"},
	{ID: 15863, Name: "Mirfak"},
	{ID: 15863, Name: "Mirphak"},
	{ID: 30324, Name: "Mirzam"},
	{ID: 14668, Name: "Misam"},
	{ID: 65378, Name: "Mizar"},
	{ID: 117291, Name: "Morava"},
	{ID: 8796, Name: "Mothallah"},
	{ID: 22491, Name: "Mouhoun"},
	{ID: 34045, Name: "Muliphein"},
	{ID: 67927, Name: "Muphrid"},
	{ID: 41704, Name: "Muscida"},
	{ID: 103527, Name: "Musica"},
	{ID: 72339, Name: "Mönch"},
	{ID: 44946, Name: "Nahn"},
	{ID: 39429, Name: "Naos"},
	{ID: 106985, Name: "Nashira"},
	{ID: 48235, Name: "Natasha"},
	{ID: 73555, Name: "Nekkar"},
	{ID: 7607, Name: "Nembus"},
	{ID: 5054, Name: "Nenque"},
	{ID: 32916, Name: "Nervia"},
	{ID: 25606, Name: "Nihal"},
	{ID: 74961, Name: "Nikawiy"},
	{ID: 31895, Name: "Nosaxa"},
	{ID: 92855, Name: "Nunki"},
	{ID: 75695, Name: "Nusakan"},
	{ID: 13192, Name: "Nushagak"},
	{ID: 40687, Name: "Násti"},
	{ID: 80838, Name: "Ogma"},
	{ID: 93747, Name: "Okab"},
	{ID: 81266, Name: "Paikauhale"},
	{ID: 100751, Name: "Peacock"},
	{ID: 26634, Name: "Phact"},
	{ID: 58001, Name: "Phad"},
	{ID: 58001, Name: "Phecda"},
	{ID: 75097, Name: "Pherkad"},
	{ID: 99711, Name: "Phoenicia"},
	{ID: 40881, Name: "Piautos"},
	{ID: 88414, Name: "Pincoya"},
	{ID: 82545, Name: "Pipirima"},
	{ID: 17851, Name: "Pleione"},
	{ID: 116084, Name: "Poerava"},
	{ID: 104382, Name: "Polaris Australis"},
	{ID: 11767, Name: "Polaris"},
	{ID: 89341, Name: "Polis"},
	{ID: 37826, Name: "Pollux"},
	{ID: 61941, Name: "Porrima"},
	{ID: 53229, Name: "Praecipua"},
	{ID: 20205, Name: "Prima Hyadum"},
	{ID: 37279, Name: "Procyon"},
	{ID: 29655, Name: "Propus"},
	{ID: 70890, Name: "Proxima Centauri"},
	{ID: 70890, Name: "Proxima"},
	{ID: 16537, Name: "Ran"},
	{ID: 17378, Name: "Rana"},
	{ID: 83547, Name: "Rapeto"},
	{ID: 48455, Name: "Rasalas"},
	{ID: 84345, Name: "Rasalgethi"},
	{ID: 86032, Name: "Rasalhague"},
	{ID: 85670, Name: "Rastaban"},
	{ID: 30089, Name: "Red Rectangle"},
	{ID: 49669, Name: "Regulus"},
	{ID: 5737, Name: "Revati"},
	{ID: 24436, Name: "Rigel"},
	{ID: 71683, Name: "Rigil Kent"},
	{ID: 71681, Name: "Rigil Kentaurus"},
	{ID: 81022, Name: "Rosaliadecastro"},
	{ID: 101769, Name: "Rotanev"},
	{ID: 6686, Name: "Ruchbah"},
	{ID: 95347, Name: "Rukbat"},
	{ID: 84012, Name: "Sabik"},
	{ID: 23453, Name: "Saclateni"},
	{ID: 110395, Name: "Sadachbia"},
	{ID: 112748, Name: "Sadalbari"},
	{ID: 109074, Name: "Sadalmelik"},
	{ID: 106278, Name: "Sadalsuud"},
	{ID: 100453, Name: "Sadr"},
	{ID: 56572, Name: "Sagarmatha"},
	{ID: 27366, Name: "Saiph"},
	{ID: 115250, Name: "Salm"},
	{ID: 86228, Name: "Sargas"},
	{ID: 84379, Name: "Sarin"},
	{ID: 21594, Name: "Sceptrum"},
	{ID: 113881, Name: "Scheat"},
	{ID: 3179, Name: "Schedar"},
	{ID: 20455, Name: "Secunda Hyadum"},
	{ID: 8886, Name: "Segin"},
	{ID: 71075, Name: "Seginus"},
	{ID: 96757, Name: "Sham"},
	{ID: 55664, Name: "Shama"},
	{ID: 79431, Name: "Sharjah"},
	{ID: 85927, Name: "Shaula"},
	{ID: 3179, Name: "Shedir"},
	{ID: 92420, Name: "Sheliak"},
	{ID: 8903, Name: "Sheratan"},
	{ID: 95262, Name: "Sika"},
	{ID: 32349, Name: "Sirius"},
	{ID: 111710, Name: "Situla"},
	{ID: 113136, Name: "Skat"},
	{ID: 104780, Name: "Solaris"},
	{ID: 65474, Name: "Spica"},
	{ID: 43674, Name: "Stribor"},
	{ID: 101958, Name: "Sualocin"},
	{ID: 47508, Name: "Subra"},
	{ID: 44816, Name: "Suhail"},
	{ID: 93194, Name: "Sulafat"},
	{ID: 69701, Name: "Syrma"},
	{ID: 106824, Name: "Sāmaya"},
	{ID: 22449, Name: "Tabit"},
	{ID: 110458, Name: "Taika"},
	{ID: 57399, Name: "Taiyangshou"},
	{ID: 63076, Name: "Taiyi"},
	{ID: 44127, Name: "Talitha"},
	{ID: 50801, Name: "Tania Australis"},
	{ID: 50372, Name: "Tania Borealis"},
	{ID: 38041, Name: "Tapecue"},
	{ID: 97278, Name: "Tarazed"},
	{ID: 40526, Name: "Tarf"},
	{ID: 17531, Name: "Taygeta"},
	{ID: 40167, Name: "Tegmine"},
	{ID: 30343, Name: "Tejat"},
	{ID: 98066, Name: "Terebellum"},
	{ID: 21393, Name: "Theemin"},
	{ID: 68756, Name: "Thuban"},
	{ID: 112122, Name: "Tiaki"},
	{ID: 26451, Name: "Tianguan"},
	{ID: 62423, Name: "Tianyi"},
	{ID: 80687, Name: "Timir"},
	{ID: 7513, Name: "Titawin"},
	{ID: 71681, Name: "Toliman"},
	{ID: 58952, Name: "Tonatiuh"},
	{ID: 8198, Name: "Torcular"},
	{ID: 17096, Name: "Tupi"},
	{ID: 60644, Name: "Tupã"},
	{ID: 39757, Name: "Tureis"},
	{ID: 47431, Name: "Ukdah"},
	{ID: 57291, Name: "Uklun"},
	{ID: 77070, Name: "Unukalhai"},
	{ID: 33856, Name: "Unurgunite"},
	{ID: 96078, Name: "Uruk"},
	{ID: 3829, Name: "Van Maanen 2"},
	{ID: 91262, Name: "Vega"},
	{ID: 116076, Name: "Veritate"},
	{ID: 63608, Name: "Vindemiatrix"},
	{ID: 35550, Name: "Wasat"},
	{ID: 27628, Name: "Wazn"},
	{ID: 34444, Name: "Wezen"},
	{ID: 5348, Name: "Wurren"},
	{ID: 82514, Name: "Xamidimura"},
	{ID: 91852, Name: "Xihe"},
	{ID: 69732, Name: "Xuange"},
	{ID: 79882, Name: "Yed Posterior"},
	{ID: 79593, Name: "Yed Prior"},
	{ID: 85822, Name: "Yildun"},
	{ID: 60129, Name: "Zaniah"},
	{ID: 18543, Name: "Zaurak"},
	{ID: 57757, Name: "Zavijava"},
	{ID: 48356, Name: "Zhang"},
	{ID: 15197, Name: "Zibal"},
	{ID: 54872, Name: "Zosma"},
	{ID: 72622, Name: "Zubenelgenubi"},
	{ID: 76333, Name: "Zubenelhakrabi"},
	{ID: 74785, Name: "Zubeneschamali"},
}
