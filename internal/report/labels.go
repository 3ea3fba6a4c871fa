package report

import "fmt"

// Labels are the user-facing chart captions.
type Labels struct {
	ProductTitle string
	ProductAxis  string
	DayTitle     string
	DayAxis      string
	ValueAxis    string
	SummaryTitle string
	TopProduct   string
	TopDay       string
}

// EnglishLabels is the default caption set.
var EnglishLabels = Labels{
	ProductTitle: "Total revenue per product",
	ProductAxis:  "Product",
	DayTitle:     "Total revenue per day",
	DayAxis:      "Date",
	ValueAxis:    "Revenue",
	SummaryTitle: "Highlights",
	TopProduct:   "Best-selling product",
	TopDay:       "Best day",
}

// RussianLabels is the Russian caption set.
var RussianLabels = Labels{
	ProductTitle: "График общей суммы продаж по каждому продукту",
	ProductAxis:  "Продукты",
	DayTitle:     "Общая сумма продаж по дням",
	DayAxis:      "Дата",
	ValueAxis:    "Прибыль",
	SummaryTitle: "Итоги",
	TopProduct:   "Лучший продукт",
	TopDay:       "Лучший день",
}

// LabelsFor returns the caption set for a locale ("en" or "ru").
func LabelsFor(locale string) (Labels, error) {
	switch locale {
	case "", "en":
		return EnglishLabels, nil
	case "ru":
		return RussianLabels, nil
	default:
		return Labels{}, fmt.Errorf("unsupported chart locale: %s", locale)
	}
}
