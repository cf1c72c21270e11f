package menu

// SeedMenu returns the built-in catalog used when nothing has been
// persisted yet (or the persisted blob cannot be parsed).
func SeedMenu() MenuData {
	return MenuData{
		Categories: []string{"烧烤类", "锡纸类", "酒水类"},
		Items: []MenuItem{
			{ID: "1", Name: "热狗", Price: 2, Category: "烧烤类"},
			{ID: "2", Name: "面筋", Price: 2, Category: "烧烤类"},
			{ID: "3", Name: "白果", Price: 2, Category: "烧烤类"},
			{ID: "4", Name: "鸭胗", Price: 3, Category: "烧烤类"},
			{ID: "5", Name: "掌中宝", Price: 3, Category: "烧烤类"},
			{ID: "6", Name: "肉肠", Price: 4, Category: "烧烤类"},
			{ID: "7", Name: "小腊肠(一把)", Price: 5, Category: "烧烤类"},
			{ID: "8", Name: "鸡腿", Price: 8, Category: "烧烤类"},
			{ID: "9", Name: "秋刀鱼", Price: 8, Category: "烧烤类"},
			{ID: "10", Name: "中翅", Price: 8, Category: "烧烤类"},
			{ID: "11", Name: "全翅", Price: 10, Category: "烧烤类"},
			{ID: "12", Name: "鱿鱼", Price: 10, Category: "烧烤类"},
			{ID: "13", Name: "多春鱼", Price: 10, Category: "烧烤类"},
			{ID: "14", Name: "鸭掌", Price: 10, Category: "烧烤类"},
			{ID: "15", Name: "鱿鱼须", Price: 10, Category: "烧烤类"},
			{ID: "16", Name: "黄瓜", Price: 1, Category: "烧烤类"},
			{ID: "17", Name: "韭菜", Price: 2, Category: "烧烤类"},
			{ID: "18", Name: "娃娃菜", Price: 2, Category: "烧烤类"},
			{ID: "19", Name: "金针菇", Price: 2, Category: "烧烤类"},
			{ID: "20", Name: "烤蒜头", Price: 2, Category: "烧烤类"},
			{ID: "21", Name: "土豆", Price: 2, Category: "烧烤类"},
			{ID: "22", Name: "青椒", Price: 2, Category: "烧烤类"},
			{ID: "23", Name: "奶香馒头", Price: 2, Category: "烧烤类"},
			{ID: "24", Name: "蒜蓉豆皮", Price: 3, Category: "烧烤类"},
			{ID: "25", Name: "骨肉相连", Price: 3, Category: "烧烤类"},
			{ID: "26", Name: "鱼肚", Price: 3, Category: "烧烤类"},
			{ID: "27", Name: "玉米粒", Price: 5, Category: "烧烤类"},
			{ID: "28", Name: "大虾(4串)", Price: 10, Category: "烧烤类"},
			{ID: "29", Name: "茄子", Price: 10, Category: "烧烤类"},
			{ID: "30", Name: "田鸡", Price: 12, Category: "烧烤类"},
			{ID: "31", Name: "锡纸娃娃菜", Price: 8, Category: "锡纸类"},
			{ID: "32", Name: "锡纸鸭血", Price: 10, Category: "锡纸类"},
			{ID: "33", Name: "锡纸金针菇", Price: 8, Category: "锡纸类"},
			{ID: "34", Name: "锡纸猪脑", Price: 15, Category: "锡纸类"},
			{ID: "35", Name: "锡纸花甲", Price: 16, Category: "锡纸类"},
			{ID: "36", Name: "贝克", Price: 6, Category: "酒水类"},
			{ID: "37", Name: "百威", Price: 6, Category: "酒水类"},
			{ID: "38", Name: "乌苏", Price: 8, Category: "酒水类"},
			{ID: "39", Name: "科罗娜", Price: 8, Category: "酒水类"},
			{ID: "40", Name: "大雪碧", Price: 6, Category: "酒水类"},
			{ID: "41", Name: "大可乐", Price: 6, Category: "酒水类"},
			{ID: "42", Name: "果粒橙", Price: 10, Category: "酒水类"},
			{ID: "43", Name: "椰汁", Price: 15, Category: "酒水类"},
		},
	}
}
