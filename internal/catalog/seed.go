package catalog

// DefaultModels returns the starter catalog inserted into an empty store,
// the successor of the hand-maintained literals the site launched with.
func DefaultModels(nowSeconds int64) []Model {
	return []Model{
		{
			ID:               "32rx-170",
			Title:            "KCP 32RX-170",
			Category:         CategoryTruckMounted,
			ShortDescription: "Компактный автобетононасос для плотной городской застройки.",
			Price:            "по запросу",
			KeySpecs: KeySpecs{
				BoomHeight: "31.7 м",
				Output:     "170 м³/ч",
				Reach:      "27.5 м",
				Chassis:    "Daewoo 6x4",
			},
			Specifications: Specifications{
				General: []SpecEntry{
					{Label: "Полная масса", Value: "26 000 кг"},
					{Label: "Габаритная длина", Value: "10 970 мм"},
				},
				Boom: []SpecEntry{
					{Label: "Вертикальный вылет", Value: "31.7 м", Highlight: true},
					{Label: "Горизонтальный вылет", Value: "27.5 м"},
					{Label: "Секций стрелы", Value: "4"},
				},
				Pump: []SpecEntry{
					{Label: "Производительность", Value: "170 м³/ч", Highlight: true},
					{Label: "Давление бетона", Value: "71 бар"},
				},
				Chassis: []SpecEntry{
					{Label: "Шасси", Value: "Daewoo Novus"},
					{Label: "Колёсная формула", Value: "6x4"},
				},
			},
			Features:   []string{"Рентгенконтроль сварных швов стрелы", "Система гашения колебаний"},
			Advantages: []string{"Разворачивается на площадке от 6 метров"},
			Delivery: Delivery{
				Terms:    "DDP до объекта заказчика",
				Time:     "45-60 дней",
				Payment:  "50% аванс, 50% по готовности",
				Warranty: "24 месяца или 2000 моточасов",
			},
			Tags:             []string{"город", "компакт"},
			CreatedAtSeconds: nowSeconds,
			UpdatedAtSeconds: nowSeconds,
		},
		{
			ID:               "38zx-170",
			Title:            "KCP 38ZX-170",
			Category:         CategoryTruckMounted,
			ShortDescription: "Универсальная 38-метровая стрела с Z-складыванием.",
			Price:            "по запросу",
			KeySpecs: KeySpecs{
				BoomHeight: "37.6 м",
				Output:     "170 м³/ч",
				Reach:      "33.1 м",
				Chassis:    "Scania 8x4",
			},
			Specifications: Specifications{
				General: []SpecEntry{
					{Label: "Полная масса", Value: "32 000 кг"},
				},
				Boom: []SpecEntry{
					{Label: "Вертикальный вылет", Value: "37.6 м", Highlight: true},
					{Label: "Секций стрелы", Value: "5"},
				},
				Pump: []SpecEntry{
					{Label: "Производительность", Value: "170 м³/ч", Highlight: true},
				},
				Chassis: []SpecEntry{
					{Label: "Шасси", Value: "Scania P-series"},
				},
			},
			Features:   []string{"Z-складывание для работы под перекрытиями"},
			Advantages: []string{"Лучшее соотношение вылета и массы в классе"},
			Delivery: Delivery{
				Terms:    "DDP до объекта заказчика",
				Time:     "60-90 дней",
				Payment:  "50% аванс, 50% по готовности",
				Warranty: "24 месяца или 2000 моточасов",
			},
			Tags:             []string{"универсал"},
			CreatedAtSeconds: nowSeconds,
			UpdatedAtSeconds: nowSeconds,
		},
		{
			ID:               "hbs-40",
			Title:            "Стационарный насос HBS 40",
			Category:         CategoryStationary,
			ShortDescription: "Линейный бетононасос для монолитных высоток.",
			Price:            "по запросу",
			KeySpecs: KeySpecs{
				Output:  "40 м³/ч",
				Chassis: "прицепной",
			},
			Specifications: Specifications{
				General: []SpecEntry{
					{Label: "Масса", Value: "5 800 кг"},
				},
				Boom: []SpecEntry{},
				Pump: []SpecEntry{
					{Label: "Производительность", Value: "40 м³/ч", Highlight: true},
					{Label: "Подача по вертикали", Value: "120 м"},
				},
				Chassis: []SpecEntry{
					{Label: "Исполнение", Value: "прицепное"},
				},
			},
			Features:   []string{"Дизельный привод Deutz"},
			Advantages: []string{"Подаёт бетон на 120 метров вверх"},
			Delivery: Delivery{
				Terms:    "самовывоз или доставка",
				Time:     "в наличии",
				Payment:  "100% при отгрузке",
				Warranty: "12 месяцев",
			},
			Tags:             []string{"монолит"},
			CreatedAtSeconds: nowSeconds,
			UpdatedAtSeconds: nowSeconds,
		},
	}
}
