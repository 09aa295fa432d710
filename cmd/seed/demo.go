package main

type demoCar struct {
	title         string
	brand         string
	model         string
	year          int
	price         int64
	purchasePrice int64
	kmDriven      int
	fuelType      string
	transmission  string
	color         string
	ownership     int
	location      string
	description   string
}

var demoCars = []demoCar{
	{
		title:         "Maruti Suzuki Swift VXI 2019",
		brand:         "Maruti Suzuki",
		model:         "Swift",
		year:          2019,
		price:         520000,
		purchasePrice: 455000,
		kmDriven:      42000,
		fuelType:      "Petrol",
		transmission:  "Manual",
		color:         "Pearl White",
		ownership:     1,
		location:      "Showroom",
		description:   "Single owner, full service history, new tyres.",
	},
	{
		title:         "Hyundai Creta SX Diesel 2021",
		brand:         "Hyundai",
		model:         "Creta",
		year:          2021,
		price:         1450000,
		purchasePrice: 1310000,
		kmDriven:      28000,
		fuelType:      "Diesel",
		transmission:  "Manual",
		color:         "Phantom Black",
		ownership:     1,
		location:      "Showroom",
		description:   "Top variant with sunroof, under warranty until 2026.",
	},
	{
		title:         "Honda City ZX CVT 2020",
		brand:         "Honda",
		model:         "City",
		year:          2020,
		price:         980000,
		purchasePrice: 870000,
		kmDriven:      35000,
		fuelType:      "Petrol",
		transmission:  "Automatic",
		color:         "Radiant Red",
		ownership:     2,
		location:      "Yard",
		description:   "CVT automatic, well maintained, minor scratch on rear bumper.",
	},
	{
		title:         "Tata Nexon EV XZ+ 2022",
		brand:         "Tata",
		model:         "Nexon EV",
		year:          2022,
		price:         1250000,
		purchasePrice: 1125000,
		kmDriven:      18000,
		fuelType:      "Electric",
		transmission:  "Automatic",
		color:         "Teal Blue",
		ownership:     1,
		location:      "Showroom",
		description:   "Battery health 96%, home charger included.",
	},
	{
		title:         "Mahindra Thar LX 4x4 2021",
		brand:         "Mahindra",
		model:         "Thar",
		year:          2021,
		price:         1380000,
		purchasePrice: 1240000,
		kmDriven:      31000,
		fuelType:      "Diesel",
		transmission:  "Manual",
		color:         "Napoli Black",
		ownership:     1,
		location:      "Showroom",
		description:   "Hard top, aftermarket alloys, no off-road use.",
	},
}
