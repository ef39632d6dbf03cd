// Package fixtures holds the compiled-in seed data every persistence
// backend is populated from on first initialization. Fixtures are read-only
// inputs to seeding; accessor functions return fresh copies so callers can
// never mutate the shared data.
package fixtures

import "time"

import "github.com/campuslink/campuslink/internal/app/models"

// Universities returns the static university reference list.
func Universities() []models.University {
	return []models.University{
		{ID: "uni-knust", Name: "Kwame Nkrumah University of Science and Technology", Logo: "/logos/knust.png"},
		{ID: "uni-ug", Name: "University of Ghana", Logo: "/logos/ug.png"},
		{ID: "uni-ucc", Name: "University of Cape Coast", Logo: "/logos/ucc.png"},
		{ID: "uni-ashesi", Name: "Ashesi University", Logo: "/logos/ashesi.png"},
	}
}

// Hostels returns the hostel listing seed records.
func Hostels() []models.Hostel {
	return []models.Hostel{
		{
			ID:           "hostels-1715000000001",
			Name:         "Sunrise Lodge",
			Location:     "Ayeduase, Kumasi",
			PriceRange:   "GHS 3,500 - 6,000 / year",
			Images:       []string{"/images/hostels/sunrise-1.jpg", "/images/hostels/sunrise-2.jpg"},
			Rating:       4.6,
			UniversityID: "uni-knust",
			Amenities: []models.Amenity{
				{Name: "Wi-Fi", Icon: "wifi"},
				{Name: "24h Security", Icon: "shield"},
				{Name: "Study Room", Icon: "book"},
			},
			Recommended: true,
		},
		{
			ID:           "hostels-1715000000002",
			Name:         "Legon Palms Hostel",
			Location:     "East Legon, Accra",
			PriceRange:   "GHS 5,000 - 9,000 / year",
			Images:       []string{"/images/hostels/palms-1.jpg"},
			Rating:       4.2,
			UniversityID: "uni-ug",
			Amenities: []models.Amenity{
				{Name: "Wi-Fi", Icon: "wifi"},
				{Name: "Gym", Icon: "dumbbell"},
			},
			Recommended: false,
		},
		{
			ID:           "hostels-1715000000003",
			Name:         "Oguaa Halls Annex",
			Location:     "Cape Coast",
			PriceRange:   "GHS 2,800 - 4,500 / year",
			Images:       []string{"/images/hostels/oguaa-1.jpg"},
			Rating:       3.9,
			UniversityID: "uni-ucc",
			Amenities: []models.Amenity{
				{Name: "Shuttle", Icon: "bus"},
				{Name: "Laundry", Icon: "shirt"},
			},
			Recommended: false,
		},
	}
}

// News returns the news feed seed records.
func News() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:          "news-1715000000001",
			Title:       "Matriculation dates announced",
			Description: "Freshers matriculate in the main auditorium; gowns are picked up a week ahead.",
			Image:       "/images/news/matriculation.jpg",
			Source:      "Registrar's Office",
			PublishedAt: time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC),
			Featured:    true,
		},
		{
			ID:          "news-1715000000002",
			Title:       "Shuttle routes extended to Ayeduase gate",
			Description: "Two extra buses join the evening rotation from next Monday.",
			Image:       "/images/news/shuttle.jpg",
			Source:      "Transport Unit",
			PublishedAt: time.Date(2025, 2, 18, 14, 30, 0, 0, time.UTC),
			Featured:    false,
		},
		{
			ID:          "news-1715000000003",
			Title:       "Library opening hours now 24/7 during exams",
			Description: "The main library stays open around the clock through the examination period.",
			Image:       "/images/news/library.jpg",
			Source:      "University Library",
			PublishedAt: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
			Featured:    true,
		},
	}
}

// Events returns the event listing seed records.
func Events() []models.Event {
	return []models.Event{
		{
			ID:          "events-1715000000001",
			Title:       "Freshers' Akwaaba Night",
			Date:        "2025-09-12",
			Day:         "12",
			Month:       "SEP",
			Location:    "Great Hall Forecourt",
			Image:       "/images/events/akwaaba.jpg",
			Time:        "7:00 PM",
			Price:       "Free",
			Description: "Music, food stalls and a welcome address for the new batch.",
		},
		{
			ID:          "events-1715000000002",
			Title:       "Inter-Hall Football Finals",
			Date:        "2025-10-04",
			Day:         "04",
			Month:       "OCT",
			Location:    "University Stadium",
			Image:       "/images/events/football.jpg",
			Time:        "3:30 PM",
			Price:       "GHS 10",
			Description: "The two unbeaten halls meet for the trophy.",
		},
		{
			ID:          "events-1715000000003",
			Title:       "Career Fair: Tech & Finance",
			Date:        "2025-11-20",
			Day:         "20",
			Month:       "NOV",
			Location:    "College of Engineering Foyer",
			Image:       "/images/events/career-fair.jpg",
			Time:        "9:00 AM",
			Price:       "Free",
			Description: "Recruiters from twenty companies, CV clinics all day.",
		},
	}
}

// Jobs returns the job posting seed records.
func Jobs() []models.Job {
	return []models.Job{
		{
			ID:          "jobs-1715000000001",
			Title:       "Campus Brand Ambassador",
			Deadline:    "2025-09-30",
			Company:     "FreshSip Beverages",
			Image:       "/images/jobs/freshsip.png",
			Location:    "On campus",
			Type:        "Part-time",
			Description: "Represent FreshSip at campus events and grow the student community.",
			Responsibilities: []string{
				"Run sampling booths at weekend events",
				"Post weekly updates to the campus channel",
			},
			Qualifications: []string{
				"Current student in any programme",
				"Comfortable speaking to crowds",
			},
			HowToApply: "Send a short intro video to careers@freshsip.example.com",
		},
		{
			ID:          "jobs-1715000000002",
			Title:       "Junior Library Assistant",
			Deadline:    "2025-10-15",
			Company:     "University Library",
			Image:       "/images/jobs/library.png",
			Location:    "Main Library",
			Type:        "Student worker",
			Description: "Evening shelving and front-desk support, 10 hours a week.",
			Responsibilities: []string{
				"Reshelve returned volumes",
				"Assist visitors at the front desk",
			},
			Qualifications: []string{
				"Level 200 or above",
				"No outstanding library fines",
			},
			HowToApply: "Apply in person at the circulation desk with your student ID.",
		},
	}
}

// Roommates returns the roommate directory seed records.
func Roommates() []models.RoommateProfile {
	return []models.RoommateProfile{
		{
			ID:             "roommates-1715000000001",
			Name:           "Ama Serwaa",
			Email:          "ama.serwaa@example.com",
			Phone:          "+233 20 000 0001",
			UniversityID:   "uni-knust",
			Course:         "BSc Computer Science",
			Year:           "2",
			Budget:         "GHS 4,000 / year",
			MoveInDate:     "2025-08-20",
			LeaseDuration:  "1 academic year",
			Bio:            "Early riser, mostly in the lab during the day.",
			Smoker:         false,
			Drinking:       "Occasionally",
			StudySchedule:  "Morning",
			Cleanliness:    "Very tidy",
			GuestFrequency: "Rarely",
			Hobbies:        []string{"chess", "baking"},
			Gender:         "female",
			SeekingGender:  "female",
		},
		{
			ID:             "roommates-1715000000002",
			Name:           "Kofi Mensah",
			Email:          "kofi.mensah@example.com",
			Phone:          "+233 20 000 0002",
			UniversityID:   "uni-ug",
			Course:         "BA Economics",
			Year:           "3",
			Budget:         "GHS 5,500 / year",
			MoveInDate:     "2025-08-28",
			LeaseDuration:  "2 semesters",
			Bio:            "Night owl, quiet on weekdays, football on Saturdays.",
			Smoker:         false,
			Drinking:       "No",
			StudySchedule:  "Night",
			Cleanliness:    "Average",
			GuestFrequency: "Sometimes",
			Hobbies:        []string{"football", "FIFA"},
			Gender:         "male",
			SeekingGender:  "male",
		},
		{
			ID:             "roommates-1715000000003",
			Name:           "Efua Baidoo",
			Email:          "efua.baidoo@example.com",
			Phone:          "+233 20 000 0003",
			UniversityID:   "uni-ucc",
			Course:         "BSc Nursing",
			Year:           "1",
			Budget:         "GHS 3,200 / year",
			MoveInDate:     "2025-09-01",
			LeaseDuration:  "1 academic year",
			Bio:            "First year, looking for a calm study-focused room.",
			Smoker:         false,
			Drinking:       "No",
			StudySchedule:  "Evening",
			Cleanliness:    "Very tidy",
			GuestFrequency: "Rarely",
			Hobbies:        []string{"reading", "choir"},
			Gender:         "female",
			SeekingGender:  "any",
		},
	}
}

// Spotlight returns the student-spotlight seed records.
func Spotlight() []models.SpotlightNominee {
	return []models.SpotlightNominee{
		{
			ID:           "spotlight-1715000000001",
			Name:         "Yaw Darko",
			Major:        "Mechanical Engineering",
			Bio:          "Built a solar-powered irrigation rig for his hometown farm.\n\nActivities: robotics club, debate society",
			Image:        "/images/spotlight/yaw.jpg",
			UniversityID: "uni-knust",
			Gender:       "male",
			Votes:        42,
			Interests:    []string{"robotics club", "debate society"},
		},
	}
}

// Services returns the static service catalog.
func Services() []models.Service {
	return []models.Service{
		{ID: "food", Name: "Food & Dining", Icon: "utensils", Description: "Campus eateries, chop bars and delivery joints"},
		{ID: "transport", Name: "Transport", Icon: "bus", Description: "Shuttles, ride shares and bike rentals"},
		{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Description: "Provision shops, bookshops and markets"},
		{ID: "laundry", Name: "Laundry", Icon: "shirt", Description: "Wash-and-fold and ironing services"},
		{ID: "printing", Name: "Printing & Copying", Icon: "printer", Description: "Project printing, binding and photocopying"},
		{ID: "tutoring", Name: "Tutoring", Icon: "graduation-cap", Description: "Peer tutoring and exam prep groups"},
	}
}

// providers is keyed by university name, then service id.
var providers = map[string]map[string][]models.ServiceProvider{
	"Kwame Nkrumah University of Science and Technology": {
		"food": {
			{ID: "prov-knust-food-1", Name: "Hilda's Kitchen", Description: "Local dishes, delivers to all halls", Rating: 4.7, ReviewCount: 321, Contact: "+233 24 111 0001", Availability: "7am - 9pm", Icon: "utensils", Location: "Ayeduase junction"},
			{ID: "prov-knust-food-2", Name: "Campus Waakye Spot", Description: "Breakfast waakye, early queue", Rating: 4.4, ReviewCount: 187, Contact: "+233 24 111 0002", Availability: "6am - 11am", Icon: "utensils", Location: "Behind Unity Hall"},
		},
		"transport": {
			{ID: "prov-knust-trans-1", Name: "Tech Shuttle Plus", Description: "Licensed shuttle line with student fares", Rating: 4.1, ReviewCount: 96, Contact: "+233 24 111 0003", Availability: "5:30am - 10pm", Icon: "bus", Location: "Commercial area"},
		},
		"laundry": {
			{ID: "prov-knust-laun-1", Name: "SparkleWash", Description: "48-hour wash-and-fold, hall pickup", Rating: 4.5, ReviewCount: 141, Contact: "+233 24 111 0004", Availability: "Mon - Sat", Icon: "shirt", Location: "Kotei road"},
		},
	},
	"University of Ghana": {
		"food": {
			{ID: "prov-ug-food-1", Name: "Night Market Grills", Description: "Evening grills at the night market", Rating: 4.6, ReviewCount: 264, Contact: "+233 24 222 0001", Availability: "5pm - 1am", Icon: "utensils", Location: "UG Night Market"},
		},
		"shopping": {
			{ID: "prov-ug-shop-1", Name: "Legon Books & Supplies", Description: "Course texts and stationery", Rating: 4.2, ReviewCount: 73, Contact: "+233 24 222 0002", Availability: "8am - 6pm", Icon: "shopping-bag", Location: "Opposite Balme Library"},
		},
	},
}

// ProvidersFor returns the catalog providers for a university name and
// service id; the result is a copy and may be empty.
func ProvidersFor(universityName, serviceID string) []models.ServiceProvider {
	byService, ok := providers[universityName]
	if !ok {
		return nil
	}
	return append([]models.ServiceProvider(nil), byService[serviceID]...)
}
