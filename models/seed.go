package models

import "time"

// SeedServices is the catalog installed on first start or whenever the
// persisted services bucket is absent or unreadable.
func SeedServices() []Service {
	return []Service{
		{ID: "1", Name: "Manicure Simples", DurationMinutes: 45, Price: 40, Description: "Esmaltação simples com design básico"},
		{ID: "2", Name: "Manicure Completa", DurationMinutes: 60, Price: 50, Description: "Cutilagem + esmaltação + hidratação"},
		{ID: "3", Name: "Pedicure Completa", DurationMinutes: 60, Price: 55, Description: "Tratamento completo dos pés"},
		{ID: "4", Name: "Unhas em Gel", DurationMinutes: 120, Price: 120, Description: "Aplicação de unhas em gel"},
		{ID: "5", Name: "Unhas em Fibra", DurationMinutes: 120, Price: 150, Description: "Alongamento com fibra de vidro"},
		{ID: "6", Name: "Alongamento", DurationMinutes: 150, Price: 180, Description: "Alongamento completo"},
		{ID: "7", Name: "Blindagem", DurationMinutes: 90, Price: 80, Description: "Tratamento de fortalecimento"},
		{ID: "8", Name: "Nail Art", DurationMinutes: 30, Price: 50, Description: "Design artístico personalizado"},
	}
}

// SeedAppointments is the demo schedule used when the persisted
// appointments bucket is absent or unreadable.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:              "1",
			ClientName:      "Maria Silva",
			ClientPhone:     "(11) 98765-4321",
			ServiceName:     "Manicure Completa",
			Date:            time.Date(2025, time.November, 11, 10, 0, 0, 0, time.Local),
			TimeSlot:        "10:00",
			DurationMinutes: 60,
			Price:           50,
			PaymentMethod:   PaymentInstantTransfer,
			Status:          StatusConfirmed,
			Notes:           "Cliente prefere cores claras",
		},
		{
			ID:              "2",
			ClientName:      "Ana Costa",
			ClientPhone:     "(11) 91234-5678",
			ServiceName:     "Unhas em Gel",
			Date:            time.Date(2025, time.November, 11, 14, 0, 0, 0, time.Local),
			TimeSlot:        "14:00",
			DurationMinutes: 120,
			Price:           120,
			PaymentMethod:   PaymentCreditCard,
			Status:          StatusConfirmed,
		},
		{
			ID:              "3",
			ClientName:      "Julia Santos",
			ClientPhone:     "(11) 99876-5432",
			ServiceName:     "Alongamento",
			Date:            time.Date(2025, time.November, 12, 15, 0, 0, 0, time.Local),
			TimeSlot:        "15:00",
			DurationMinutes: 150,
			Price:           180,
			PaymentMethod:   PaymentCash,
			Status:          StatusPending,
		},
	}
}
