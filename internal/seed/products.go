package seed

import (
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
)

// Products returns the demo catalog. Prices are whole rubles.
func Products() []domain.Product {
	return []domain.Product{
		{ID: "prd_001", Name: "Fender Stratocaster", Brand: "Fender", Category: enums.CategoryGuitars, Price: 89990, Currency: enums.CurrencyRUB, Rating: 4.8, Reviews: 124, Image: "/images/Fender Stratocaster.webp", Description: "Легендарная электрогитара для рока, блюза и не только.", InStock: 12},
		{ID: "prd_002", Name: "Gibson Les Paul Standard", Brand: "Gibson", Category: enums.CategoryGuitars, Price: 129990, Currency: enums.CurrencyRUB, Rating: 4.9, Reviews: 89, Image: "/images/guitars/Gibson Les Paul Standard.webp", Description: "Классическая электрогитара с хамбакерами.", InStock: 8},
		{ID: "prd_003", Name: "Ibanez RG550", Brand: "Ibanez", Category: enums.CategoryGuitars, Price: 75990, Currency: enums.CurrencyRUB, Rating: 4.7, Reviews: 67, Image: "/images/guitars/Ibanez RG550.webp", Description: "Электрогитара для металла и рока.", InStock: 15},
		{ID: "prd_004", Name: "Yamaha C40", Brand: "Yamaha", Category: enums.CategoryGuitars, Price: 15990, Currency: enums.CurrencyRUB, Rating: 4.5, Reviews: 203, Image: "/images/guitars/Yamaha C40.webp", Description: "Качественная классическая гитара для начинающих.", InStock: 25},
		{ID: "prd_005", Name: "Taylor 314ce", Brand: "Taylor", Category: enums.CategoryGuitars, Price: 145990, Currency: enums.CurrencyRUB, Rating: 4.9, Reviews: 45, Image: "/images/guitars/Taylor 314ce.webp", Description: "Акустическая гитара премиум-класса.", InStock: 6},
		{ID: "prd_006", Name: "Fender Telecaster", Brand: "Fender", Category: enums.CategoryGuitars, Price: 82990, Currency: enums.CurrencyRUB, Rating: 4.7, Reviews: 98, Image: "/images/guitars/Fender Telecaster.webp", Description: "Универсальная электрогитара с чистым звучанием.", InStock: 10},
		{ID: "prd_007", Name: "Epiphone SG Standard", Brand: "Epiphone", Category: enums.CategoryGuitars, Price: 45990, Currency: enums.CurrencyRUB, Rating: 4.4, Reviews: 156, Image: "/images/guitars/Epiphone SG Standard.webp", Description: "Доступная версия классической модели SG.", InStock: 18},
		{ID: "prd_008", Name: "Cort X100", Brand: "Cort", Category: enums.CategoryGuitars, Price: 32990, Currency: enums.CurrencyRUB, Rating: 4.3, Reviews: 87, Image: "/images/guitars/Cort X100.webp", Description: "Бюджетная электрогитара с отличным звуком.", InStock: 22},
		{ID: "prd_009", Name: "Jackson Dinky", Brand: "Jackson", Category: enums.CategoryGuitars, Price: 68990, Currency: enums.CurrencyRUB, Rating: 4.6, Reviews: 54, Image: "/images/guitars/Jackson Dinky.webp", Description: "Скоростная гитара для хард-рока и метала.", InStock: 9},
		{ID: "prd_010", Name: "PRS SE Custom 24", Brand: "PRS", Category: enums.CategoryGuitars, Price: 89990, Currency: enums.CurrencyRUB, Rating: 4.8, Reviews: 76, Image: "/images/guitars/prs-se-custom24.webp", Description: "Универсальная гитара с превосходной отделкой.", InStock: 11},

		{ID: "prd_011", Name: "Yamaha P-125", Brand: "Yamaha", Category: enums.CategoryKeyboards, Price: 63990, Currency: enums.CurrencyRUB, Rating: 4.7, Reviews: 85, Image: "/images/Yamaha P-125.webp", Description: "Компактное цифровое пианино с натуральной клавиатурой.", InStock: 8},
		{ID: "prd_012", Name: "Roland FP-30X", Brand: "Roland", Category: enums.CategoryKeyboards, Price: 78990, Currency: enums.CurrencyRUB, Rating: 4.8, Reviews: 63, Image: "/images/keyboards/roland-fp30x.webp", Description: "Цифровое пианино с улучшенной механикой.", InStock: 7},
		{ID: "prd_013", Name: "Korg B2", Brand: "Korg", Category: enums.CategoryKeyboards, Price: 54990, Currency: enums.CurrencyRUB, Rating: 4.6, Reviews: 92, Image: "/images/keyboards/korg-b2.webp", Description: "Домашнее цифровое пианино начального уровня.", InStock: 12},
		{ID: "prd_014", Name: "Casio CDP-S150", Brand: "Casio", Category: enums.CategoryKeyboards, Price: 42990, Currency: enums.CurrencyRUB, Rating: 4.4, Reviews: 118, Image: "/images/keyboards/Casio CDP-S150.webp", Description: "Ультратонкое цифровое пианино.", InStock: 15},
		{ID: "prd_015", Name: "Nord Stage 3", Brand: "Nord", Category: enums.CategoryKeyboards, Price: 289990, Currency: enums.CurrencyRUB, Rating: 4.9, Reviews: 34, Image: "/images/keyboards/Nord Stage 3.webp", Description: "Профессиональная клавишная рабочая станция.", InStock: 3},

		{ID: "prd_016", Name: "Roland TD-1DMK", Brand: "Roland", Category: enums.CategoryDrums, Price: 114990, Currency: enums.CurrencyRUB, Rating: 4.6, Reviews: 42, Image: "/images/Roland TD-1DMK.webp", Description: "Электронная ударная установка для дома и студии.", InStock: 5},
		{ID: "prd_017", Name: "Yamaha DTX402K", Brand: "Yamaha", Category: enums.CategoryDrums, Price: 59990, Currency: enums.CurrencyRUB, Rating: 4.5, Reviews: 78, Image: "/images/drums/Yamaha DTX402K.webp", Description: "Электронная ударная установка начального уровня.", InStock: 9},
		{ID: "prd_018", Name: "Pearl Export", Brand: "Pearl", Category: enums.CategoryDrums, Price: 89990, Currency: enums.CurrencyRUB, Rating: 4.7, Reviews: 56, Image: "/images/drums/Pearl Export.webp", Description: "Акустическая ударная установка для репетиций.", InStock: 6},

		{ID: "prd_019", Name: "Yamaha YTR-2330", Brand: "Yamaha", Category: enums.CategoryBrass, Price: 45990, Currency: enums.CurrencyRUB, Rating: 4.5, Reviews: 23, Image: "/images/brass/Yamaha YTR-2330.webp", Description: "Труба для начинающих и студентов.", InStock: 8},
		{ID: "prd_020", Name: "Selmer SAS280", Brand: "Selmer", Category: enums.CategoryBrass, Price: 189990, Currency: enums.CurrencyRUB, Rating: 4.9, Reviews: 15, Image: "/images/brass/Selmer SAS280.webp", Description: "Профессиональный альт-саксофон.", InStock: 2},

		{ID: "prd_021", Name: "Yamaha V5SG", Brand: "Yamaha", Category: enums.CategoryStrings, Price: 32990, Currency: enums.CurrencyRUB, Rating: 4.4, Reviews: 31, Image: "/images/strings/Yamaha V5SG.webp", Description: "Скрипка для начинающих с полным комплектом.", InStock: 11},
		{ID: "prd_022", Name: "Stentor Student II", Brand: "Stentor", Category: enums.CategoryStrings, Price: 28990, Currency: enums.CurrencyRUB, Rating: 4.3, Reviews: 45, Image: "/images/strings/Stentor Student II.webp", Description: "Качественная студенческая скрипка.", InStock: 14},

		{ID: "prd_023", Name: "Shure SM7B", Brand: "Shure", Category: enums.CategoryStudio, Price: 39990, Currency: enums.CurrencyRUB, Rating: 4.9, Reviews: 210, Image: "/images/Shure SM7B.webp", Description: "Студийный динамический микрофон для подкастов и вокала.", InStock: 20},
		{ID: "prd_024", Name: "Focusrite Scarlett 2i2", Brand: "Focusrite", Category: enums.CategoryStudio, Price: 15990, Currency: enums.CurrencyRUB, Rating: 4.8, Reviews: 342, Image: "/images/studio/Focusrite Scarlett 2i2.webp", Description: "Популярный аудиоинтерфейс для домашней студии.", InStock: 25},
		{ID: "prd_025", Name: "Rode NT1-A", Brand: "Rode", Category: enums.CategoryStudio, Price: 18990, Currency: enums.CurrencyRUB, Rating: 4.7, Reviews: 189, Image: "/images/studio/Rode NT1-A.webp", Description: "Конденсаторный микрофон для студийной записи.", InStock: 18},

		{ID: "prd_026", Name: "Native Instruments Traktor Kontrol S4", Brand: "NI", Category: enums.CategoryDJ, Price: 89990, Currency: enums.CurrencyRUB, Rating: 4.5, Reviews: 60, Image: "/images/Native Instruments Traktor Kontrol S4.webp", Description: "Профессиональный DJ-контроллер для выступлений и студии.", InStock: 7},
		{ID: "prd_027", Name: "Pioneer DJ DDJ-400", Brand: "Pioneer", Category: enums.CategoryDJ, Price: 45990, Currency: enums.CurrencyRUB, Rating: 4.6, Reviews: 156, Image: "/images/dj/Pioneer DJ DDJ-400.webp", Description: "DJ-контроллер для начинающих с Rekordbox.", InStock: 12},

		{ID: "prd_028", Name: "D'Addario EXL110", Brand: "D'Addario", Category: enums.CategoryAccessories, Price: 690, Currency: enums.CurrencyRUB, Rating: 4.4, Reviews: 340, Image: "/images/D'Addario EXL110.webp", Description: "Комплект струн для электрогитары, 10-46.", InStock: 120},
		{ID: "prd_029", Name: "Ernie Ball Regular Slinky", Brand: "Ernie Ball", Category: enums.CategoryAccessories, Price: 790, Currency: enums.CurrencyRUB, Rating: 4.5, Reviews: 287, Image: "/images/accessories/Ernie Ball Regular Slinky.webp", Description: "Популярные струны для электрогитары.", InStock: 95},

		{ID: "prd_030", Name: "Fender American Professional II", Brand: "Fender", Category: enums.CategoryGuitars, Price: 149990, Currency: enums.CurrencyRUB, Rating: 4.9, Reviews: 47, Image: "/images/guitars/Fender American Professional II.webp", Description: "Профессиональная серия с улучшенной электроникой.", InStock: 5},
		{ID: "prd_031", Name: "Gibson SG Standard", Brand: "Gibson", Category: enums.CategoryGuitars, Price: 119990, Currency: enums.CurrencyRUB, Rating: 4.8, Reviews: 38, Image: "/images/guitars/Gibson SG Standard.webp", Description: "Классическая модель с характерным дизайном.", InStock: 7},
	}
}

// PopularProducts is the storefront landing strip, a fixed subset of
// the catalog.
func PopularProducts() []domain.Product {
	wanted := map[string]struct{}{
		"prd_001": {}, "prd_007": {}, "prd_011": {}, "prd_012": {},
		"prd_015": {}, "prd_024": {}, "prd_026": {}, "prd_027": {},
	}
	products := Products()
	out := make([]domain.Product, 0, len(wanted))
	for _, p := range products {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
