package reference

import "github.com/uyouii/growth-percentiles/model"

// WHO Child Growth Standards (2006), monthly LMS parameters from birth to
// 24 months. Age in days is the month times 30.4375, rounded.

// weight-for-age, boys (kg)
var whoWeightForAgeBoys = []model.ReferencePoint{
	{Age: 0, LMS: model.LMS{L: 0.3487, M: 3.3464, S: 0.14602}},     // 0 mo
	{Age: 30, LMS: model.LMS{L: 0.2297, M: 4.4709, S: 0.13395}},    // 1 mo
	{Age: 61, LMS: model.LMS{L: 0.1970, M: 5.5675, S: 0.12385}},    // 2 mo
	{Age: 91, LMS: model.LMS{L: 0.1738, M: 6.3762, S: 0.11727}},    // 3 mo
	{Age: 122, LMS: model.LMS{L: 0.1553, M: 7.0023, S: 0.11316}},   // 4 mo
	{Age: 152, LMS: model.LMS{L: 0.1395, M: 7.5105, S: 0.11080}},   // 5 mo
	{Age: 183, LMS: model.LMS{L: 0.1257, M: 7.9340, S: 0.10958}},   // 6 mo
	{Age: 213, LMS: model.LMS{L: 0.1134, M: 8.2970, S: 0.10902}},   // 7 mo
	{Age: 244, LMS: model.LMS{L: 0.1021, M: 8.6151, S: 0.10882}},   // 8 mo
	{Age: 274, LMS: model.LMS{L: 0.0917, M: 8.9014, S: 0.10881}},   // 9 mo
	{Age: 304, LMS: model.LMS{L: 0.0820, M: 9.1649, S: 0.10891}},   // 10 mo
	{Age: 335, LMS: model.LMS{L: 0.0730, M: 9.4122, S: 0.10906}},   // 11 mo
	{Age: 365, LMS: model.LMS{L: 0.0644, M: 9.6479, S: 0.10925}},   // 12 mo
	{Age: 396, LMS: model.LMS{L: 0.0563, M: 9.8749, S: 0.10949}},   // 13 mo
	{Age: 426, LMS: model.LMS{L: 0.0487, M: 10.0953, S: 0.10976}},  // 14 mo
	{Age: 457, LMS: model.LMS{L: 0.0413, M: 10.3108, S: 0.11007}},  // 15 mo
	{Age: 487, LMS: model.LMS{L: 0.0343, M: 10.5228, S: 0.11041}},  // 16 mo
	{Age: 517, LMS: model.LMS{L: 0.0275, M: 10.7319, S: 0.11079}},  // 17 mo
	{Age: 548, LMS: model.LMS{L: 0.0211, M: 10.9385, S: 0.11119}},  // 18 mo
	{Age: 578, LMS: model.LMS{L: 0.0148, M: 11.1430, S: 0.11164}},  // 19 mo
	{Age: 609, LMS: model.LMS{L: 0.0087, M: 11.3462, S: 0.11211}},  // 20 mo
	{Age: 639, LMS: model.LMS{L: 0.0029, M: 11.5486, S: 0.11261}},  // 21 mo
	{Age: 670, LMS: model.LMS{L: -0.0028, M: 11.7504, S: 0.11314}}, // 22 mo
	{Age: 700, LMS: model.LMS{L: -0.0083, M: 11.9514, S: 0.11369}}, // 23 mo
	{Age: 731, LMS: model.LMS{L: -0.0137, M: 12.1515, S: 0.11426}}, // 24 mo
}

// weight-for-age, girls (kg)
var whoWeightForAgeGirls = []model.ReferencePoint{
	{Age: 0, LMS: model.LMS{L: 0.3809, M: 3.2322, S: 0.14171}},     // 0 mo
	{Age: 30, LMS: model.LMS{L: 0.1714, M: 4.1873, S: 0.13724}},    // 1 mo
	{Age: 61, LMS: model.LMS{L: 0.0962, M: 5.1282, S: 0.13000}},    // 2 mo
	{Age: 91, LMS: model.LMS{L: 0.0402, M: 5.8458, S: 0.12619}},    // 3 mo
	{Age: 122, LMS: model.LMS{L: -0.0050, M: 6.4237, S: 0.12402}},  // 4 mo
	{Age: 152, LMS: model.LMS{L: -0.0430, M: 6.8985, S: 0.12274}},  // 5 mo
	{Age: 183, LMS: model.LMS{L: -0.0756, M: 7.2970, S: 0.12204}},  // 6 mo
	{Age: 213, LMS: model.LMS{L: -0.1039, M: 7.6422, S: 0.12178}},  // 7 mo
	{Age: 244, LMS: model.LMS{L: -0.1288, M: 7.9487, S: 0.12181}},  // 8 mo
	{Age: 274, LMS: model.LMS{L: -0.1507, M: 8.2254, S: 0.12199}},  // 9 mo
	{Age: 304, LMS: model.LMS{L: -0.1700, M: 8.4800, S: 0.12223}},  // 10 mo
	{Age: 335, LMS: model.LMS{L: -0.1872, M: 8.7192, S: 0.12247}},  // 11 mo
	{Age: 365, LMS: model.LMS{L: -0.2024, M: 8.9481, S: 0.12268}},  // 12 mo
	{Age: 396, LMS: model.LMS{L: -0.2158, M: 9.1699, S: 0.12283}},  // 13 mo
	{Age: 426, LMS: model.LMS{L: -0.2278, M: 9.3870, S: 0.12294}},  // 14 mo
	{Age: 457, LMS: model.LMS{L: -0.2384, M: 9.6008, S: 0.12299}},  // 15 mo
	{Age: 487, LMS: model.LMS{L: -0.2478, M: 9.8124, S: 0.12303}},  // 16 mo
	{Age: 517, LMS: model.LMS{L: -0.2562, M: 10.0226, S: 0.12306}}, // 17 mo
	{Age: 548, LMS: model.LMS{L: -0.2637, M: 10.2315, S: 0.12309}}, // 18 mo
	{Age: 578, LMS: model.LMS{L: -0.2703, M: 10.4393, S: 0.12315}}, // 19 mo
	{Age: 609, LMS: model.LMS{L: -0.2762, M: 10.6464, S: 0.12323}}, // 20 mo
	{Age: 639, LMS: model.LMS{L: -0.2815, M: 10.8534, S: 0.12335}}, // 21 mo
	{Age: 670, LMS: model.LMS{L: -0.2862, M: 11.0608, S: 0.12350}}, // 22 mo
	{Age: 700, LMS: model.LMS{L: -0.2903, M: 11.2688, S: 0.12369}}, // 23 mo
	{Age: 731, LMS: model.LMS{L: -0.2941, M: 11.4775, S: 0.12390}}, // 24 mo
}

// length-for-age, boys (cm)
var whoLengthForAgeBoys = []model.ReferencePoint{
	{Age: 0, LMS: model.LMS{L: 1, M: 49.8842, S: 0.03795}},   // 0 mo
	{Age: 30, LMS: model.LMS{L: 1, M: 54.7244, S: 0.03557}},  // 1 mo
	{Age: 61, LMS: model.LMS{L: 1, M: 58.4249, S: 0.03424}},  // 2 mo
	{Age: 91, LMS: model.LMS{L: 1, M: 61.4292, S: 0.03328}},  // 3 mo
	{Age: 122, LMS: model.LMS{L: 1, M: 63.8860, S: 0.03257}}, // 4 mo
	{Age: 152, LMS: model.LMS{L: 1, M: 65.9026, S: 0.03204}}, // 5 mo
	{Age: 183, LMS: model.LMS{L: 1, M: 67.6236, S: 0.03165}}, // 6 mo
	{Age: 213, LMS: model.LMS{L: 1, M: 69.1645, S: 0.03139}}, // 7 mo
	{Age: 244, LMS: model.LMS{L: 1, M: 70.5994, S: 0.03124}}, // 8 mo
	{Age: 274, LMS: model.LMS{L: 1, M: 71.9687, S: 0.03117}}, // 9 mo
	{Age: 304, LMS: model.LMS{L: 1, M: 73.2812, S: 0.03118}}, // 10 mo
	{Age: 335, LMS: model.LMS{L: 1, M: 74.5388, S: 0.03125}}, // 11 mo
	{Age: 365, LMS: model.LMS{L: 1, M: 75.7488, S: 0.03137}}, // 12 mo
	{Age: 396, LMS: model.LMS{L: 1, M: 76.9186, S: 0.03154}}, // 13 mo
	{Age: 426, LMS: model.LMS{L: 1, M: 78.0497, S: 0.03174}}, // 14 mo
	{Age: 457, LMS: model.LMS{L: 1, M: 79.1458, S: 0.03197}}, // 15 mo
	{Age: 487, LMS: model.LMS{L: 1, M: 80.2113, S: 0.03222}}, // 16 mo
	{Age: 517, LMS: model.LMS{L: 1, M: 81.2487, S: 0.03250}}, // 17 mo
	{Age: 548, LMS: model.LMS{L: 1, M: 82.2587, S: 0.03279}}, // 18 mo
	{Age: 578, LMS: model.LMS{L: 1, M: 83.2418, S: 0.03310}}, // 19 mo
	{Age: 609, LMS: model.LMS{L: 1, M: 84.1996, S: 0.03342}}, // 20 mo
	{Age: 639, LMS: model.LMS{L: 1, M: 85.1348, S: 0.03376}}, // 21 mo
	{Age: 670, LMS: model.LMS{L: 1, M: 86.0477, S: 0.03410}}, // 22 mo
	{Age: 700, LMS: model.LMS{L: 1, M: 86.9410, S: 0.03445}}, // 23 mo
	{Age: 731, LMS: model.LMS{L: 1, M: 87.8161, S: 0.03479}}, // 24 mo
}

// length-for-age, girls (cm)
var whoLengthForAgeGirls = []model.ReferencePoint{
	{Age: 0, LMS: model.LMS{L: 1, M: 49.1477, S: 0.03790}},   // 0 mo
	{Age: 30, LMS: model.LMS{L: 1, M: 53.6872, S: 0.03640}},  // 1 mo
	{Age: 61, LMS: model.LMS{L: 1, M: 57.0673, S: 0.03568}},  // 2 mo
	{Age: 91, LMS: model.LMS{L: 1, M: 59.8029, S: 0.03520}},  // 3 mo
	{Age: 122, LMS: model.LMS{L: 1, M: 62.0899, S: 0.03486}}, // 4 mo
	{Age: 152, LMS: model.LMS{L: 1, M: 64.0301, S: 0.03463}}, // 5 mo
	{Age: 183, LMS: model.LMS{L: 1, M: 65.7311, S: 0.03448}}, // 6 mo
	{Age: 213, LMS: model.LMS{L: 1, M: 67.2873, S: 0.03441}}, // 7 mo
	{Age: 244, LMS: model.LMS{L: 1, M: 68.7498, S: 0.03440}}, // 8 mo
	{Age: 274, LMS: model.LMS{L: 1, M: 70.1435, S: 0.03444}}, // 9 mo
	{Age: 304, LMS: model.LMS{L: 1, M: 71.4818, S: 0.03452}}, // 10 mo
	{Age: 335, LMS: model.LMS{L: 1, M: 72.7710, S: 0.03464}}, // 11 mo
	{Age: 365, LMS: model.LMS{L: 1, M: 74.0150, S: 0.03479}}, // 12 mo
	{Age: 396, LMS: model.LMS{L: 1, M: 75.2176, S: 0.03496}}, // 13 mo
	{Age: 426, LMS: model.LMS{L: 1, M: 76.3817, S: 0.03514}}, // 14 mo
	{Age: 457, LMS: model.LMS{L: 1, M: 77.5099, S: 0.03534}}, // 15 mo
	{Age: 487, LMS: model.LMS{L: 1, M: 78.6055, S: 0.03555}}, // 16 mo
	{Age: 517, LMS: model.LMS{L: 1, M: 79.6710, S: 0.03576}}, // 17 mo
	{Age: 548, LMS: model.LMS{L: 1, M: 80.7079, S: 0.03598}}, // 18 mo
	{Age: 578, LMS: model.LMS{L: 1, M: 81.7182, S: 0.03620}}, // 19 mo
	{Age: 609, LMS: model.LMS{L: 1, M: 82.7036, S: 0.03643}}, // 20 mo
	{Age: 639, LMS: model.LMS{L: 1, M: 83.6654, S: 0.03666}}, // 21 mo
	{Age: 670, LMS: model.LMS{L: 1, M: 84.6040, S: 0.03688}}, // 22 mo
	{Age: 700, LMS: model.LMS{L: 1, M: 85.5202, S: 0.03711}}, // 23 mo
	{Age: 731, LMS: model.LMS{L: 1, M: 86.4153, S: 0.03734}}, // 24 mo
}

// head circumference-for-age, boys (cm)
var whoHeadForAgeBoys = []model.ReferencePoint{
	{Age: 0, LMS: model.LMS{L: 1, M: 34.4618, S: 0.03686}},   // 0 mo
	{Age: 30, LMS: model.LMS{L: 1, M: 37.2759, S: 0.03133}},  // 1 mo
	{Age: 61, LMS: model.LMS{L: 1, M: 39.1285, S: 0.02997}},  // 2 mo
	{Age: 91, LMS: model.LMS{L: 1, M: 40.5135, S: 0.02918}},  // 3 mo
	{Age: 122, LMS: model.LMS{L: 1, M: 41.6317, S: 0.02868}}, // 4 mo
	{Age: 152, LMS: model.LMS{L: 1, M: 42.5576, S: 0.02837}}, // 5 mo
	{Age: 183, LMS: model.LMS{L: 1, M: 43.3306, S: 0.02817}}, // 6 mo
	{Age: 213, LMS: model.LMS{L: 1, M: 43.9803, S: 0.02804}}, // 7 mo
	{Age: 244, LMS: model.LMS{L: 1, M: 44.5300, S: 0.02796}}, // 8 mo
	{Age: 274, LMS: model.LMS{L: 1, M: 44.9998, S: 0.02792}}, // 9 mo
	{Age: 304, LMS: model.LMS{L: 1, M: 45.4051, S: 0.02790}}, // 10 mo
	{Age: 335, LMS: model.LMS{L: 1, M: 45.7573, S: 0.02789}}, // 11 mo
	{Age: 365, LMS: model.LMS{L: 1, M: 46.0661, S: 0.02789}}, // 12 mo
	{Age: 396, LMS: model.LMS{L: 1, M: 46.3395, S: 0.02789}}, // 13 mo
	{Age: 426, LMS: model.LMS{L: 1, M: 46.5844, S: 0.02791}}, // 14 mo
	{Age: 457, LMS: model.LMS{L: 1, M: 46.8060, S: 0.02792}}, // 15 mo
	{Age: 487, LMS: model.LMS{L: 1, M: 47.0088, S: 0.02795}}, // 16 mo
	{Age: 517, LMS: model.LMS{L: 1, M: 47.1962, S: 0.02797}}, // 17 mo
	{Age: 548, LMS: model.LMS{L: 1, M: 47.3711, S: 0.02800}}, // 18 mo
	{Age: 578, LMS: model.LMS{L: 1, M: 47.5357, S: 0.02803}}, // 19 mo
	{Age: 609, LMS: model.LMS{L: 1, M: 47.6919, S: 0.02806}}, // 20 mo
	{Age: 639, LMS: model.LMS{L: 1, M: 47.8408, S: 0.02810}}, // 21 mo
	{Age: 670, LMS: model.LMS{L: 1, M: 47.9833, S: 0.02813}}, // 22 mo
	{Age: 700, LMS: model.LMS{L: 1, M: 48.1201, S: 0.02817}}, // 23 mo
	{Age: 731, LMS: model.LMS{L: 1, M: 48.2515, S: 0.02821}}, // 24 mo
}

// head circumference-for-age, girls (cm)
var whoHeadForAgeGirls = []model.ReferencePoint{
	{Age: 0, LMS: model.LMS{L: 1, M: 33.8787, S: 0.03496}},   // 0 mo
	{Age: 30, LMS: model.LMS{L: 1, M: 36.5463, S: 0.03210}},  // 1 mo
	{Age: 61, LMS: model.LMS{L: 1, M: 38.2521, S: 0.03168}},  // 2 mo
	{Age: 91, LMS: model.LMS{L: 1, M: 39.5328, S: 0.03140}},  // 3 mo
	{Age: 122, LMS: model.LMS{L: 1, M: 40.5817, S: 0.03119}}, // 4 mo
	{Age: 152, LMS: model.LMS{L: 1, M: 41.4590, S: 0.03102}}, // 5 mo
	{Age: 183, LMS: model.LMS{L: 1, M: 42.1995, S: 0.03087}}, // 6 mo
	{Age: 213, LMS: model.LMS{L: 1, M: 42.8290, S: 0.03075}}, // 7 mo
	{Age: 244, LMS: model.LMS{L: 1, M: 43.3671, S: 0.03063}}, // 8 mo
	{Age: 274, LMS: model.LMS{L: 1, M: 43.8300, S: 0.03053}}, // 9 mo
	{Age: 304, LMS: model.LMS{L: 1, M: 44.2319, S: 0.03044}}, // 10 mo
	{Age: 335, LMS: model.LMS{L: 1, M: 44.5844, S: 0.03035}}, // 11 mo
	{Age: 365, LMS: model.LMS{L: 1, M: 44.8965, S: 0.03027}}, // 12 mo
	{Age: 396, LMS: model.LMS{L: 1, M: 45.1752, S: 0.03019}}, // 13 mo
	{Age: 426, LMS: model.LMS{L: 1, M: 45.4265, S: 0.03012}}, // 14 mo
	{Age: 457, LMS: model.LMS{L: 1, M: 45.6551, S: 0.03006}}, // 15 mo
	{Age: 487, LMS: model.LMS{L: 1, M: 45.8650, S: 0.02999}}, // 16 mo
	{Age: 517, LMS: model.LMS{L: 1, M: 46.0598, S: 0.02993}}, // 17 mo
	{Age: 548, LMS: model.LMS{L: 1, M: 46.2424, S: 0.02987}}, // 18 mo
	{Age: 578, LMS: model.LMS{L: 1, M: 46.4152, S: 0.02982}}, // 19 mo
	{Age: 609, LMS: model.LMS{L: 1, M: 46.5801, S: 0.02977}}, // 20 mo
	{Age: 639, LMS: model.LMS{L: 1, M: 46.7384, S: 0.02972}}, // 21 mo
	{Age: 670, LMS: model.LMS{L: 1, M: 46.8913, S: 0.02967}}, // 22 mo
	{Age: 700, LMS: model.LMS{L: 1, M: 47.0391, S: 0.02962}}, // 23 mo
	{Age: 731, LMS: model.LMS{L: 1, M: 47.1822, S: 0.02957}}, // 24 mo
}
