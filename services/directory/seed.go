package directory

import "handymatch/models"

// SeedProfessionals is the fixed mock set loaded at startup. IDs are stable
// so contact links and bookings survive across queries within a run.
func SeedProfessionals() []models.Professional {
	return []models.Professional{
		{
			ID:          "pro-001",
			Name:        "Carlos Silva",
			Category:    models.CategoryPlumber,
			Rating:      4.9,
			Reviews:     127,
			HourlyRate:  85,
			Distance:    "1.2 km",
			ImageURL:    "https://i.pravatar.cc/300?u=carlos",
			Available:   true,
			PhoneNumber: "11987654321",
			Email:       "carlos.silva@handymatch.com.br",
		},
		{
			ID:          "pro-002",
			Name:        "Roberto Ferreira",
			Category:    models.CategoryElectrician,
			Rating:      4.8,
			Reviews:     89,
			HourlyRate:  95,
			Distance:    "2.5 km",
			ImageURL:    "https://i.pravatar.cc/300?u=roberto",
			Available:   true,
			PhoneNumber: "11976543210",
			Email:       "roberto.ferreira@handymatch.com.br",
		},
		{
			ID:          "pro-003",
			Name:        "Ana Oliveira",
			Category:    models.CategoryCleaner,
			Rating:      5.0,
			Reviews:     214,
			HourlyRate:  60,
			Distance:    "3.1 km",
			ImageURL:    "https://i.pravatar.cc/300?u=ana",
			Available:   true,
			PhoneNumber: "11965432109",
			Email:       "ana.oliveira@handymatch.com.br",
		},
		{
			ID:          "pro-004",
			Name:        "José Santos",
			Category:    models.CategoryMason,
			Rating:      4.7,
			Reviews:     56,
			HourlyRate:  110,
			Distance:    "4.8 km",
			ImageURL:    "https://i.pravatar.cc/300?u=jose",
			Available:   false,
			PhoneNumber: "11954321098",
			Email:       "jose.santos@handymatch.com.br",
		},
		{
			ID:          "pro-005",
			Name:        "Paulo Mendes",
			Category:    models.CategoryPainter,
			Rating:      4.6,
			Reviews:     73,
			HourlyRate:  70,
			Distance:    "2.0 km",
			ImageURL:    "https://i.pravatar.cc/300?u=paulo",
			Available:   true,
			PhoneNumber: "11943210987",
			Email:       "paulo.mendes@handymatch.com.br",
		},
		{
			ID:          "pro-006",
			Name:        "Fernanda Costa",
			Category:    models.CategoryGardener,
			Rating:      4.9,
			Reviews:     102,
			HourlyRate:  55,
			Distance:    "5.3 km",
			ImageURL:    "https://i.pravatar.cc/300?u=fernanda",
			Available:   true,
			PhoneNumber: "11932109876",
			Email:       "fernanda.costa@handymatch.com.br",
		},
		{
			ID:          "pro-007",
			Name:        "Marcos Pereira",
			Category:    models.CategoryElectrician,
			Rating:      4.5,
			Reviews:     44,
			HourlyRate:  80,
			Distance:    "6.7 km",
			ImageURL:    "https://i.pravatar.cc/300?u=marcos",
			Available:   true,
			PhoneNumber: "11921098765",
			Email:       "marcos.pereira@handymatch.com.br",
		},
		{
			ID:          "pro-008",
			Name:        "Luiz Almeida",
			Category:    models.CategoryGeneral,
			Rating:      4.8,
			Reviews:     168,
			HourlyRate:  65,
			Distance:    "1.8 km",
			ImageURL:    "https://i.pravatar.cc/300?u=luiz",
			Available:   true,
			PhoneNumber: "11910987654",
			Email:       "luiz.almeida@handymatch.com.br",
		},
		{
			ID:          "pro-009",
			Name:        "Ricardo Gomes",
			Category:    models.CategoryACInstaller,
			Rating:      4.7,
			Reviews:     91,
			HourlyRate:  120,
			Distance:    "3.9 km",
			ImageURL:    "https://i.pravatar.cc/300?u=ricardo",
			Available:   true,
			PhoneNumber: "11909876543",
			Email:       "ricardo.gomes@handymatch.com.br",
		},
		{
			ID:          "pro-010",
			Name:        "Beatriz Rocha",
			Category:    models.CategoryITTech,
			Rating:      5.0,
			Reviews:     37,
			HourlyRate:  100,
			Distance:    "7.4 km",
			ImageURL:    "https://i.pravatar.cc/300?u=beatriz",
			Available:   true,
			PhoneNumber: "11998765432",
			Email:       "beatriz.rocha@handymatch.com.br",
		},
	}
}
