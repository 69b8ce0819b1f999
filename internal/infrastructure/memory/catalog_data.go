package memory

import (
	"time"

	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
)

// Datos de semilla del directorio: diez negocios de Atlanta. El catálogo
// es la única fuente de verdad de la aplicación.

func day(d, open, close string) entity.BusinessHours {
	return entity.BusinessHours{Day: d, Open: open, Close: close}
}

func closedDay(d string) entity.BusinessHours {
	return entity.BusinessHours{Day: d, IsClosed: true}
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("catalog: timestamp de semilla inválido: " + s)
	}
	return t
}

func seedBusinesses() []*entity.Business {
	return []*entity.Business{
		{
			ID:               "1",
			Name:             "Soul Food Kitchen",
			Category:         entity.CategoryRestaurant,
			SubscriptionTier: entity.TierPremium,
			Description:      "Authentic soul food restaurant serving traditional Southern cuisine with a modern twist. Our recipes have been passed down through generations, offering a true taste of heritage.",
			Location: entity.BusinessLocation{
				Address: "123 Main Street", City: "Atlanta", State: "GA", Zip: "30303",
				Latitude: 33.7490, Longitude: -84.3880,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-1234", Email: "info@soulfoodkitchen.com",
				Website: "www.soulfoodkitchen.com", Instagram: "@soulfoodkitchen",
				Twitter: "@soulfoodkitchen", Facebook: "SoulFoodKitchen",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1567620832903-9fc6debc209f?q=80&w=1080",
				"https://images.unsplash.com/photo-1583224964978-2e827ef39746?q=80&w=1080",
				"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				day("Monday", "11:00", "22:00"), day("Tuesday", "11:00", "22:00"),
				day("Wednesday", "11:00", "22:00"), day("Thursday", "11:00", "23:00"),
				day("Friday", "11:00", "00:00"), day("Saturday", "10:00", "00:00"),
				day("Sunday", "10:00", "21:00"),
			},
			Rating: 4.8, ReviewCount: 342,
			SpecialOffers: []string{
				"10% off for first-time customers",
				"Free dessert with orders over $50",
			},
			Featured:  true,
			CreatedAt: ts("2023-01-15T12:00:00Z"), UpdatedAt: ts("2023-06-20T15:30:00Z"),
		},
		{
			ID:               "2",
			Name:             "Curl Culture Hair Salon",
			Category:         entity.CategoryBeauty,
			SubscriptionTier: entity.TierStandard,
			Description:      "Specializing in natural hair care, textured hair styling, and protective styles. Our experienced stylists celebrate and enhance your natural beauty.",
			Location: entity.BusinessLocation{
				Address: "456 Auburn Ave", City: "Atlanta", State: "GA", Zip: "30312",
				Latitude: 33.7566, Longitude: -84.3730,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-6789", Email: "appointments@curlculture.com",
				Website: "www.curlculturesalon.com", Instagram: "@curlculture",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1560066984-138dadb4c035?q=80&w=1080",
				"https://images.unsplash.com/photo-1562322140-8baeececf3df?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				closedDay("Monday"), day("Tuesday", "10:00", "19:00"),
				day("Wednesday", "10:00", "19:00"), day("Thursday", "10:00", "19:00"),
				day("Friday", "09:00", "20:00"), day("Saturday", "09:00", "18:00"),
				day("Sunday", "12:00", "17:00"),
			},
			Rating: 4.7, ReviewCount: 189,
			CreatedAt: ts("2023-02-10T09:15:00Z"), UpdatedAt: ts("2023-06-15T11:45:00Z"),
		},
		{
			ID:               "3",
			Name:             "Tech Innovators",
			Category:         entity.CategoryTech,
			SubscriptionTier: entity.TierPremium,
			Description:      "Black-owned tech company specializing in web development, mobile apps, and digital marketing solutions for small businesses and startups.",
			Location: entity.BusinessLocation{
				Address: "789 Peachtree St", City: "Atlanta", State: "GA", Zip: "30308",
				Latitude: 33.7815, Longitude: -84.3830,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-9012", Email: "hello@techinnovators.com",
				Website: "www.techinnovators.com", Instagram: "@techinnovators",
				Twitter: "@techinnovators", Facebook: "TechInnovators",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1531482615713-2afd69097998?q=80&w=1080",
				"https://images.unsplash.com/photo-1504384764586-bb4cdc1707b0?q=80&w=1080",
				"https://images.unsplash.com/photo-1551434678-e076c223a692?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				day("Monday", "09:00", "18:00"), day("Tuesday", "09:00", "18:00"),
				day("Wednesday", "09:00", "18:00"), day("Thursday", "09:00", "18:00"),
				day("Friday", "09:00", "17:00"), closedDay("Saturday"), closedDay("Sunday"),
			},
			Rating: 4.9, ReviewCount: 127,
			SpecialOffers: []string{
				"Free consultation for new clients",
				"20% off first project",
			},
			Featured:  true,
			CreatedAt: ts("2023-03-05T14:30:00Z"), UpdatedAt: ts("2023-06-25T10:20:00Z"),
		},
		{
			ID:               "4",
			Name:             "Urban Threads Clothing",
			Category:         entity.CategoryRetail,
			SubscriptionTier: entity.TierStandard,
			Description:      "Contemporary urban clothing brand featuring original designs that celebrate Black culture and heritage. Ethically sourced materials and local production.",
			Location: entity.BusinessLocation{
				Address: "321 Edgewood Ave", City: "Atlanta", State: "GA", Zip: "30312",
				Latitude: 33.7540, Longitude: -84.3720,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-3456", Email: "shop@urbanthreads.com",
				Website: "www.urbanthreadsclothing.com", Instagram: "@urbanthreads",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?q=80&w=1080",
				"https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				day("Monday", "11:00", "19:00"), day("Tuesday", "11:00", "19:00"),
				day("Wednesday", "11:00", "19:00"), day("Thursday", "11:00", "19:00"),
				day("Friday", "11:00", "21:00"), day("Saturday", "10:00", "21:00"),
				day("Sunday", "12:00", "18:00"),
			},
			Rating: 4.6, ReviewCount: 215,
			CreatedAt: ts("2023-01-20T11:45:00Z"), UpdatedAt: ts("2023-06-10T16:30:00Z"),
		},
		{
			ID:               "5",
			Name:             "Prosperity Financial Services",
			Category:         entity.CategoryFinance,
			SubscriptionTier: entity.TierPremium,
			Description:      "Financial planning, wealth management, and investment services focused on building generational wealth in the Black community. Specializing in first-time investors and entrepreneurs.",
			Location: entity.BusinessLocation{
				Address: "555 Marietta St", City: "Atlanta", State: "GA", Zip: "30313",
				Latitude: 33.7680, Longitude: -84.4050,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-7890", Email: "info@prosperityfinancial.com",
				Website: "www.prosperityfinancialservices.com", Instagram: "@prosperityfinancial",
				Twitter: "@prosperityfin", Facebook: "ProsperityFinancial",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?q=80&w=1080",
				"https://images.unsplash.com/photo-1556742208-999815fca738?q=80&w=1080",
				"https://images.unsplash.com/photo-1551836022-d5d88e9218df?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				day("Monday", "09:00", "17:00"), day("Tuesday", "09:00", "17:00"),
				day("Wednesday", "09:00", "17:00"), day("Thursday", "09:00", "17:00"),
				day("Friday", "09:00", "16:00"), day("Saturday", "10:00", "14:00"),
				closedDay("Sunday"),
			},
			Rating: 4.9, ReviewCount: 98,
			SpecialOffers: []string{
				"Free initial consultation",
				"Financial literacy workshop every first Saturday",
			},
			Featured:  true,
			CreatedAt: ts("2023-02-15T13:20:00Z"), UpdatedAt: ts("2023-06-18T09:10:00Z"),
		},
		{
			ID:               "6",
			Name:             "Healthy Roots Juice Bar",
			Category:         entity.CategoryHealth,
			SubscriptionTier: entity.TierStandard,
			Description:      "Organic juice bar and smoothie shop with a focus on health and wellness. Featuring fresh, locally-sourced ingredients and traditional healing recipes.",
			Location: entity.BusinessLocation{
				Address: "987 Ponce de Leon Ave", City: "Atlanta", State: "GA", Zip: "30306",
				Latitude: 33.7740, Longitude: -84.3550,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-2345", Email: "hello@healthyroots.com",
				Website: "www.healthyrootsjuice.com", Instagram: "@healthyroots",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1589733955941-5eeaf752f6dd?q=80&w=1080",
				"https://images.unsplash.com/photo-1622597467836-f3e6707e1fd6?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				day("Monday", "07:00", "19:00"), day("Tuesday", "07:00", "19:00"),
				day("Wednesday", "07:00", "19:00"), day("Thursday", "07:00", "19:00"),
				day("Friday", "07:00", "19:00"), day("Saturday", "08:00", "18:00"),
				day("Sunday", "09:00", "16:00"),
			},
			Rating: 4.7, ReviewCount: 156,
			CreatedAt: ts("2023-03-10T08:45:00Z"), UpdatedAt: ts("2023-06-22T14:15:00Z"),
		},
		{
			ID:               "7",
			Name:             "Creative Minds Art Gallery",
			Category:         entity.CategoryArt,
			SubscriptionTier: entity.TierStandard,
			Description:      "Contemporary art gallery showcasing works by Black artists from around the world. Regular exhibitions, artist talks, and community workshops.",
			Location: entity.BusinessLocation{
				Address: "654 Peters St", City: "Atlanta", State: "GA", Zip: "30310",
				Latitude: 33.7380, Longitude: -84.4150,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-8901", Email: "gallery@creativeminds.com",
				Website: "www.creativemindsart.com", Instagram: "@creativemindsart",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1594784237780-d5db82c2a4da?q=80&w=1080",
				"https://images.unsplash.com/photo-1577720643272-265f09367456?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				closedDay("Monday"), day("Tuesday", "11:00", "18:00"),
				day("Wednesday", "11:00", "18:00"), day("Thursday", "11:00", "18:00"),
				day("Friday", "11:00", "20:00"), day("Saturday", "10:00", "20:00"),
				day("Sunday", "12:00", "17:00"),
			},
			Rating: 4.8, ReviewCount: 112,
			CreatedAt: ts("2023-04-05T15:30:00Z"), UpdatedAt: ts("2023-06-20T12:40:00Z"),
		},
		{
			ID:               "8",
			Name:             "Heritage Books & Cafe",
			Category:         entity.CategoryRetail,
			SubscriptionTier: entity.TierPremium,
			Description:      "Independent bookstore specializing in literature by Black authors, with a cozy cafe serving coffee from Black-owned roasters and homemade pastries.",
			Location: entity.BusinessLocation{
				Address: "234 Decatur St", City: "Atlanta", State: "GA", Zip: "30303",
				Latitude: 33.7520, Longitude: -84.3750,
			},
			Contact: entity.BusinessContact{
				Phone: "404-555-4567", Email: "books@heritagebooks.com",
				Website: "www.heritagebooksandcafe.com", Instagram: "@heritagebooks",
				Twitter: "@heritagebooks", Facebook: "HeritageBooksCafe",
			},
			Photos: []string{
				"https://images.unsplash.com/photo-1526662092594-e98c1e356d6a?q=80&w=1080",
				"https://images.unsplash.com/photo-1608505256259-f2e8a93e29b0?q=80&w=1080",
				"https://images.unsplash.com/photo-1530785602389-07594beb8b73?q=80&w=1080",
			},
			Hours: []entity.BusinessHours{
				day("Monday", "08:00", "20:00"), day("Tuesday", "08:00", "20:00"),
				day("Wednesday", "08:00", "20:00"), day("Thursday", "08:00", "20:00"),
				day("Friday", "08:00", "22:00"), day("Saturday", "09:00", "22:00"),
				day("Sunday", "10:00", "18:00"),
			},
			Rating: 4.9, ReviewCount: 203,
			SpecialOffers: []string{
				"Book club membership discounts",
				"Author signing events monthly",
			},
			Featured:  true,
			CreatedAt: ts("2023-01-25T10:15:00Z"), UpdatedAt: ts("2023-06-15T17:50:00Z"),
		},
		{
			ID:               "9",
			Name:             "Essence Beauty Supply",
			Category:         entity.CategoryBeauty,
			SubscriptionTier: entity.TierBasic,
			Description:      "Beauty supply store carrying a wide range of hair and skincare products specifically formulated for Black hair and skin.",
			Location: entity.BusinessLocation{
				Address: "876 MLK Jr Dr", City: "Atlanta", State: "GA", Zip: "30314",
				Latitude: 33.7560, Longitude: -84.4230,
			},
			Contact: entity.BusinessContact{Phone: "404-555-6789"},
			Photos: []string{
				"https://images.unsplash.com/photo-1596462502278-27bfdc403348?q=80&w=1080",
			},
			Rating: 4.5, ReviewCount: 87,
			CreatedAt: ts("2023-05-10T09:30:00Z"), UpdatedAt: ts("2023-06-05T13:20:00Z"),
		},
		{
			ID:               "10",
			Name:             "Legacy Construction",
			Category:         entity.CategoryService,
			SubscriptionTier: entity.TierBasic,
			Description:      "Full-service construction company specializing in residential and commercial projects.",
			Location: entity.BusinessLocation{
				Address: "432 Joseph E. Lowery Blvd", City: "Atlanta", State: "GA", Zip: "30314",
				Latitude: 33.7620, Longitude: -84.4280,
			},
			Contact: entity.BusinessContact{Phone: "404-555-0123"},
			Photos: []string{
				"https://images.unsplash.com/photo-1541888946425-d81bb19240f5?q=80&w=1080",
			},
			Rating: 4.6, ReviewCount: 42,
			CreatedAt: ts("2023-04-20T11:45:00Z"), UpdatedAt: ts("2023-05-30T16:10:00Z"),
		},
	}
}
