package seed

import "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"

// MenuItems is the built-in café menu.
var MenuItems = []models.MenuItemCreate{
	{
		Name:          text("Arabic Coffee (Qahwa)"),
		NameAr:        text("قهوة عربية"),
		Description:   text("Traditional Arabic coffee served with dates, cardamom-spiced"),
		DescriptionAr: text("قهوة عربية تقليدية تُقدم مع التمر، معطرة بالهيل"),
		Price:         price(15.0),
		Category:      models.CategoryTraditionalCoffee,
	},
	{
		Name:          text("Turkish Coffee"),
		NameAr:        text("قهوة تركية"),
		Description:   text("Rich, strong coffee brewed in traditional cezve"),
		DescriptionAr: text("قهوة غنية وقوية محضرة في الجزوة التقليدية"),
		Price:         price(18.0),
		Category:      models.CategoryTraditionalCoffee,
	},
	{
		Name:          text("Dubai Blend Espresso"),
		NameAr:        text("إسبريسو خليط دبي"),
		Description:   text("Medium roast with fruit-forward notes, locally roasted"),
		DescriptionAr: text("تحميص متوسط مع نكهات فاكهية، محمص محلياً"),
		Price:         price(22.0),
		Category:      models.CategorySpecialtyCoffee,
	},
	{
		Name:          text("Saffron Latte"),
		NameAr:        text("لاتيه الزعفران"),
		Description:   text("Creamy latte infused with premium saffron"),
		DescriptionAr: text("لاتيه كريمي معطر بالزعفران الفاخر"),
		Price:         price(28.0),
		Category:      models.CategorySpecialtyCoffee,
	},
	{
		Name:          text("Rose Cardamom Cappuccino"),
		NameAr:        text("كابتشينو الورد والهيل"),
		Description:   text("Aromatic cappuccino with rose water and cardamom"),
		DescriptionAr: text("كابتشينو عطري مع ماء الورد والهيل"),
		Price:         price(26.0),
		Category:      models.CategorySpecialtyCoffee,
	},
	{
		Name:          text("Gold Dust Mocha"),
		NameAr:        text("موكا الغبار الذهبي"),
		Description:   text("Luxurious mocha topped with edible gold flakes"),
		DescriptionAr: text("موكا فاخرة مزينة برقائق الذهب الصالحة للأكل"),
		Price:         price(35.0),
		Category:      models.CategorySpecialtyCoffee,
	},
	{
		Name:          text("Iced Arabic Coffee"),
		NameAr:        text("قهوة عربية باردة"),
		Description:   text("Refreshing cold Arabic coffee with dates"),
		DescriptionAr: text("قهوة عربية باردة منعشة مع التمر"),
		Price:         price(20.0),
		Category:      models.CategoryColdBeverages,
	},
	{
		Name:          text("Cold Brew with Dates"),
		NameAr:        text("كولد برو مع التمر"),
		Description:   text("Smooth cold brew sweetened with date syrup"),
		DescriptionAr: text("كولد برو ناعم محلى بدبس التمر"),
		Price:         price(24.0),
		Category:      models.CategoryColdBeverages,
	},
	{
		Name:          text("Mint Lemonade"),
		NameAr:        text("عصير ليمون بالنعناع"),
		Description:   text("Fresh lemonade with mint leaves"),
		DescriptionAr: text("عصير ليمون طازج مع أوراق النعناع"),
		Price:         price(18.0),
		Category:      models.CategoryColdBeverages,
	},
	{
		Name:          text("Baklava"),
		NameAr:        text("بقلاوة"),
		Description:   text("Traditional Middle Eastern pastry with honey and nuts"),
		DescriptionAr: text("حلوى شرق أوسطية تقليدية بالعسل والمكسرات"),
		Price:         price(15.0),
		Category:      models.CategoryPastries,
	},
	{
		Name:          text("Ma'amoul"),
		NameAr:        text("معمول"),
		Description:   text("Date-filled cookies, perfect with coffee"),
		DescriptionAr: text("كعك محشو بالتمر، مثالي مع القهوة"),
		Price:         price(12.0),
		Category:      models.CategoryPastries,
	},
	{
		Name:          text("Kunafa"),
		NameAr:        text("كنافة"),
		Description:   text("Sweet cheese pastry with orange blossom syrup"),
		DescriptionAr: text("معجنات الجبن الحلوة مع شراب زهر البرتقال"),
		Price:         price(20.0),
		Category:      models.CategoryPastries,
	},
	{
		Name:          text("Shakshuka"),
		NameAr:        text("شكشوكة"),
		Description:   text("Eggs poached in spiced tomato sauce with bread"),
		DescriptionAr: text("بيض مسلوق في صلصة الطماطم المتبلة مع الخبز"),
		Price:         price(32.0),
		Category:      models.CategoryBreakfast,
	},
	{
		Name:          text("Arabic Breakfast Platter"),
		NameAr:        text("طبق إفطار عربي"),
		Description:   text("Hummus, labneh, olives, cheese, and Arabic bread"),
		DescriptionAr: text("حمص، لبنة، زيتون، جبن، وخبز عربي"),
		Price:         price(38.0),
		Category:      models.CategoryBreakfast,
	},
	{
		Name:          text("Mixed Nuts"),
		NameAr:        text("مكسرات مشكلة"),
		Description:   text("Premium Middle Eastern nuts and dried fruits"),
		DescriptionAr: text("مكسرات وفواكه مجففة شرق أوسطية فاخرة"),
		Price:         price(25.0),
		Category:      models.CategorySnacks,
	},
	{
		Name:          text("Halloumi Sandwich"),
		NameAr:        text("ساندويش حلوم"),
		Description:   text("Grilled halloumi with fresh vegetables in Arabic bread"),
		DescriptionAr: text("حلوم مشوي مع خضار طازجة في خبز عربي"),
		Price:         price(28.0),
		Category:      models.CategorySnacks,
	},
}

// MenuImages maps menu item names to hosted image URLs.
var MenuImages = map[string]string{
	"Arabic Coffee (Qahwa)":    "https://storage.googleapis.com/fenado-ai-farm-public/generated/8242aee2-a8a7-4c71-b3c4-24ebf331e1d7.webp",
	"Turkish Coffee":           "https://storage.googleapis.com/fenado-ai-farm-public/generated/2b7a6e24-2cd6-40f8-8bd7-80ab9873d37b.webp",
	"Dubai Blend Espresso":     "https://storage.googleapis.com/fenado-ai-farm-public/generated/fd822c75-ec8c-4cec-bad0-98ae23ee4c74.webp",
	"Saffron Latte":            "https://storage.googleapis.com/fenado-ai-farm-public/generated/54cb4221-bb4a-4fb2-ae05-d19a88f13329.webp",
	"Rose Cardamom Cappuccino": "https://storage.googleapis.com/fenado-ai-farm-public/generated/b92874c4-b839-477f-bd9e-db7898c9308e.webp",
	"Gold Dust Mocha":          "https://storage.googleapis.com/fenado-ai-farm-public/generated/836db545-2159-4324-a617-1b7af9e1f85c.webp",
	"Iced Arabic Coffee":       "https://storage.googleapis.com/fenado-ai-farm-public/generated/303b1770-5994-4d99-87c7-8bbb4a753be1.webp",
	"Cold Brew with Dates":     "https://storage.googleapis.com/fenado-ai-farm-public/generated/6b4e4867-16f1-4575-bec0-c6a6bea044c3.webp",
	"Mint Lemonade":            "https://storage.googleapis.com/fenado-ai-farm-public/generated/acffb16d-3711-4e4c-8662-81bfb2f983c4.webp",
	"Baklava":                  "https://storage.googleapis.com/fenado-ai-farm-public/generated/73a6ca33-23df-42a0-b50d-d213cc30702c.webp",
	"Ma'amoul":                 "https://storage.googleapis.com/fenado-ai-farm-public/generated/19e2b207-80da-4a8f-a496-baf651379718.webp",
	"Kunafa":                   "https://storage.googleapis.com/fenado-ai-farm-public/generated/c45e8888-89b6-4f35-87d9-05c318c81520.webp",
	"Shakshuka":                "https://storage.googleapis.com/fenado-ai-farm-public/generated/73dc619f-4f55-40f2-a912-1bd8c4080433.webp",
	"Arabic Breakfast Platter": "https://storage.googleapis.com/fenado-ai-farm-public/generated/ad11ad3c-8afa-46cc-8e57-ef856dfb175a.webp",
	"Mixed Nuts":               "https://storage.googleapis.com/fenado-ai-farm-public/generated/0583da89-fcaf-4c44-99bd-fca522530a13.webp",
	"Halloumi Sandwich":        "https://storage.googleapis.com/fenado-ai-farm-public/generated/99b374c4-66c3-4b70-9c84-23aac579c0a4.webp",
}

func price(v float64) *float64 {
	return &v
}

func text(v string) *string {
	return &v
}
