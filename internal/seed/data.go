// Package seed holds the sample dataset loaded by the admin seed endpoint.
package seed

import "github.com/ZBrian99/inclusiva-api/internal/transfer"

func str(s string) *string  { return &s }
func num(n int) *int        { return &n }
func fl(f float64) *float64 { return &f }
func boolean(b bool) *bool  { return &b }

// Posts returns one representative listing per category.
func Posts() []*transfer.PostInput {
	return []*transfer.PostInput{
		{
			Category:    "eventos",
			Title:       str("Feria de emprendedores del barrio"),
			Subtitle:    str("Más de 40 puestos locales"),
			Description: str("Feria mensual con productos regionales, música en vivo y patio gastronómico."),
			Image:       str("https://images.unsplash.com/photo-1472851294608-062f824d29cc"),
			Author:      str("Club Social Mitre"),
			Location:    str("Plaza Mitre"),
			Tags:        []string{"feria", "comunidad"},
			Date:        str("2025-09-01"),
			Payment:     []string{"cash", "transfer"},
			StartDate:   str("2025-10-04T10:00:00Z"),
			EndDate:     str("2025-10-04T19:00:00Z"),
			Venue:       str("Plaza Mitre, sector norte"),
			Mode:        str("presencial"),
			Capacity:    num(400),
			Organizer:   str("Comisión vecinal"),
			Contact:     map[string]string{"instagram": "https://instagram.com/feriamitre", "whatsapp": "https://wa.me/5492610000001"},
		},
		{
			Category:        "servicios",
			Title:           str("Electricista matriculado"),
			Description:     str("Instalaciones, tableros y urgencias las 24 horas. Presupuesto sin cargo."),
			Image:           str("https://images.unsplash.com/photo-1621905251189-08b45d6a269e"),
			Author:          str("Jorge Peralta"),
			Location:        str("Godoy Cruz"),
			PriceLabel:      str("a convenir"),
			Rating:          fl(4.8),
			RatingCount:     num(36),
			Tags:            []string{"electricidad", "urgencias"},
			Date:            str("2025-09-01"),
			Payment:         []string{"cash", "debit", "transfer"},
			ExperienceYears: num(15),
			Availability:    str("Lunes a sábado, urgencias 24h"),
			ServiceArea:     str("Gran Mendoza"),
			Contact:         map[string]string{"whatsapp": "https://wa.me/5492610000002"},
		},
		{
			Category:    "productos",
			Title:       str("Bicicleta rodado 29 nueva"),
			Description: str("Cuadro de aluminio, 21 velocidades, frenos a disco. Entrega en el día."),
			Image:       str("https://images.unsplash.com/photo-1485965120184-e220f721d03e"),
			Author:      str("Bici Center"),
			Location:    str("Ciudad de Mendoza"),
			Price:       num(450000),
			Tags:        []string{"bicicleta", "deporte"},
			Date:        str("2025-09-01"),
			Payment:     []string{"cash", "credit", "mercadopago"},
			Condition:   str("nuevo"),
			Stock:       num(3),
			Warranty:    str("6 meses"),
			Contact:     map[string]string{"instagram": "https://instagram.com/bicicentermza"},
		},
		{
			Category:       "usados",
			Title:          str("Heladera con freezer usada"),
			Description:    str("Funciona perfecto, detalle estético en puerta. Retiro por zona este."),
			Image:          str("https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5"),
			Author:         str("Marcela G."),
			Location:       str("Guaymallén"),
			Price:          num(180000),
			Tags:           []string{"hogar", "electrodomésticos"},
			Date:           str("2025-09-01"),
			Payment:        []string{"cash", "barter"},
			BarterAccepted: boolean(true),
			Condition:      str("usado"),
			UsageTime:      str("4 años"),
			Contact:        map[string]string{"whatsapp": "https://wa.me/5492610000003"},
		},
		{
			Category:    "cursos",
			Title:       str("Curso de huerta urbana"),
			Subtitle:    str("Cupos limitados"),
			Description: str("Cuatro encuentros prácticos para armar tu huerta en casa, con semillas incluidas."),
			Image:       str("https://images.unsplash.com/photo-1466692476868-aef1dfb1e735"),
			Author:      str("Espacio Verde"),
			Location:    str("Las Heras"),
			Price:       num(25000),
			Tags:        []string{"huerta", "talleres"},
			Date:        str("2025-09-01"),
			Payment:     []string{"cash", "transfer", "mercadopago"},
			Mode:        str("híbrido"),
			Duration:    str("4 semanas"),
			Schedule:    str("Sábados 10 a 12"),
			Level:       str("principiante"),
			Contact:     map[string]string{"email": "mailto:hola@espacioverde.ar"},
		},
		{
			Category:    "pedidos",
			Title:       str("Busco profe de guitarra"),
			Description: str("Para clases presenciales una vez por semana, nivel inicial, adulto."),
			Image:       str("https://images.unsplash.com/photo-1510915361894-db8b60106cb1"),
			Author:      str("Lucas M."),
			Location:    str("Maipú"),
			Urgent:      boolean(false),
			Tags:        []string{"música", "clases"},
			Date:        str("2025-09-01"),
			Payment:     []string{"cash"},
			NeededBy:    str("2025-11-01"),
			BudgetRange: str("Hasta $15.000 por clase"),
			Contact:     map[string]string{"telegram": "https://t.me/lucasmza"},
		},
	}
}
