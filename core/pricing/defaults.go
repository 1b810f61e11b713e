package pricing

// DefaultBook returns the built-in pricing book. The rate scalars mirror the
// calculator's shipped settings document; the tier tables carry the standard
// per-size labor, mobilization, and material figures.
func DefaultBook() *Book {
	return &Book{
		RateSettings: RateSettings{
			LaborRate:        180.00,
			MobilizationRate: 180.00,
			MileageRate:      0.67,
			OilPrice:         16.00,
			OilMarkup:        1.5,
			CoolantPrice:     16.00,
			CoolantMarkup:    1.5,
			PartsMarkup:      1.25,
			FreightMarkup:    1.05,
		},
		ServiceA: ServiceTable{
			Frequency: 4,
			Data: map[string]Components{
				"2-14":      {Labor: 1.5, Mobilization: 1.0, Parts: 25.00},
				"15-30":     {Labor: 2.0, Mobilization: 1.0, Parts: 35.00},
				"35-150":    {Labor: 2.5, Mobilization: 1.5, Parts: 50.00},
				"151-250":   {Labor: 3.0, Mobilization: 1.5, Parts: 75.00},
				"251-400":   {Labor: 3.5, Mobilization: 2.0, Parts: 100.00},
				"401-500":   {Labor: 4.0, Mobilization: 2.0, Parts: 125.00},
				"501-670":   {Labor: 5.0, Mobilization: 2.0, Parts: 150.00},
				"671-1050":  {Labor: 6.0, Mobilization: 2.5, Parts: 200.00},
				"1051-1500": {Labor: 7.0, Mobilization: 3.0, Parts: 250.00},
				"1501+":     {Labor: 8.0, Mobilization: 3.0, Parts: 300.00},
			},
		},
		ServiceB: ServiceTable{
			Frequency: 1,
			Data: map[string]Components{
				"2-14":      {Labor: 1.5, Mobilization: 1.0, FilterCost: 25.00, OilGallons: 1.0},
				"15-30":     {Labor: 2.0, Mobilization: 1.0, FilterCost: 40.00, OilGallons: 1.5},
				"35-150":    {Labor: 2.5, Mobilization: 1.5, FilterCost: 60.00, OilGallons: 3.5},
				"151-250":   {Labor: 3.0, Mobilization: 1.5, FilterCost: 85.00, OilGallons: 7.0},
				"251-400":   {Labor: 3.5, Mobilization: 2.0, FilterCost: 110.00, OilGallons: 12.0},
				"401-500":   {Labor: 4.0, Mobilization: 2.0, FilterCost: 135.00, OilGallons: 18.0},
				"501-670":   {Labor: 4.5, Mobilization: 2.0, FilterCost: 160.00, OilGallons: 25.0},
				"671-1050":  {Labor: 5.5, Mobilization: 2.5, FilterCost: 210.00, OilGallons: 40.0},
				"1051-1500": {Labor: 6.5, Mobilization: 3.0, FilterCost: 260.00, OilGallons: 60.0},
				"1501+":     {Labor: 8.0, Mobilization: 3.0, FilterCost: 320.00, OilGallons: 90.0},
			},
		},
		ServiceC: ServiceTable{
			Frequency: 1,
			Data: map[string]Components{
				"2-14":      {Labor: 1.5, Mobilization: 1.0, CoolantGallons: 2.0, HoseBeltCost: 40.00},
				"15-30":     {Labor: 2.0, Mobilization: 1.0, CoolantGallons: 3.0, HoseBeltCost: 55.00},
				"35-150":    {Labor: 2.5, Mobilization: 1.5, CoolantGallons: 6.0, HoseBeltCost: 80.00},
				"151-250":   {Labor: 3.0, Mobilization: 1.5, CoolantGallons: 10.0, HoseBeltCost: 110.00},
				"251-400":   {Labor: 3.5, Mobilization: 2.0, CoolantGallons: 15.0, HoseBeltCost: 140.00},
				"401-500":   {Labor: 4.0, Mobilization: 2.0, CoolantGallons: 20.0, HoseBeltCost: 170.00},
				"501-670":   {Labor: 4.5, Mobilization: 2.0, CoolantGallons: 26.0, HoseBeltCost: 200.00},
				"671-1050":  {Labor: 5.5, Mobilization: 2.5, CoolantGallons: 38.0, HoseBeltCost: 260.00},
				"1051-1500": {Labor: 6.5, Mobilization: 3.0, CoolantGallons: 55.0, HoseBeltCost: 320.00},
				"1501+":     {Labor: 8.0, Mobilization: 3.0, CoolantGallons: 80.0, HoseBeltCost: 400.00},
			},
		},
		ServiceD: AnalysisFees{
			Oil:     16.55,
			Coolant: 16.55,
			Fuel:    60.00,
		},
		ServiceE: ServiceTable{
			Frequency: 1,
			Data: map[string]Components{
				"2-14":      {Labor: 2.0, Mobilization: 1.0, LoadBankRental: 250.00, DeliveryCost: 100.00},
				"15-30":     {Labor: 2.5, Mobilization: 1.0, LoadBankRental: 300.00, DeliveryCost: 100.00},
				"35-150":    {Labor: 3.0, Mobilization: 1.5, LoadBankRental: 400.00, DeliveryCost: 150.00},
				"151-250":   {Labor: 3.5, Mobilization: 1.5, LoadBankRental: 500.00, DeliveryCost: 150.00},
				"251-400":   {Labor: 4.0, Mobilization: 2.0, LoadBankRental: 650.00, DeliveryCost: 200.00},
				"401-500":   {Labor: 4.5, Mobilization: 2.0, LoadBankRental: 800.00, TransformerRental: 250.00, DeliveryCost: 200.00},
				"501-670":   {Labor: 5.0, Mobilization: 2.0, LoadBankRental: 950.00, TransformerRental: 350.00, DeliveryCost: 250.00},
				"671-1050":  {Labor: 6.0, Mobilization: 2.5, LoadBankRental: 1200.00, TransformerRental: 500.00, DeliveryCost: 300.00},
				"1051-1500": {Labor: 7.0, Mobilization: 3.0, LoadBankRental: 1500.00, TransformerRental: 650.00, DeliveryCost: 350.00},
				"1501+":     {Labor: 8.0, Mobilization: 3.0, LoadBankRental: 1900.00, TransformerRental: 800.00, DeliveryCost: 400.00},
			},
		},
	}
}
