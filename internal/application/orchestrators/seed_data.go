package orchestrators

import (
	"greenvours/internal/domain/article"
	"greenvours/internal/domain/program"
	"greenvours/internal/domain/project"
	"greenvours/internal/domain/relief"
	"greenvours/internal/domain/sitecontent"
	"greenvours/internal/domain/team"
	"greenvours/internal/domain/tour"
)

// Initial site content. Records keep their numeric ids as document keys so
// chronological collections list newest-first from day one.

func seedTours() []tour.Tour {
	return []tour.Tour{
		{
			ID: "1", Title: "Bwindi Gorilla Trek", Region: "Western Uganda", Activity: tour.ActivityWildlife,
			Duration: 3, Difficulty: tour.DifficultyChallenging, Price: 2800000,
			ImageURL:    "https://picsum.photos/seed/ugtour1/600/400",
			Description: "Embark on a once-in-a-lifetime journey into the heart of Bwindi Impenetrable Forest to witness a family of mountain gorillas in their natural habitat. This profound experience supports the conservation of this critically endangered species and benefits local communities.",
			Itinerary: []tour.ItineraryDay{
				{Day: 1, Title: "Transfer to Bwindi", Description: "Depart from Kampala/Entebbe and travel southwest to the edge of the Bwindi Impenetrable Forest, enjoying scenic views of the Ugandan countryside."},
				{Day: 2, Title: "The Gorilla Trek", Description: "After a briefing from UWA rangers, venture into the dense forest. The trek can take several hours, but the reward is an unforgettable hour spent observing the gorillas."},
				{Day: 3, Title: "Community Walk & Return Journey", Description: "Visit a local Batwa community to learn about their culture before starting your journey back to Kampala."},
			},
			SustainabilityFeatures: []string{
				"Gorilla permits fund national park conservation",
				"Employment of local guides and porters",
				"Support for local community schools and clinics",
				"Eco-lodge accommodations with minimal footprint",
			},
			Guide: tour.Guide{
				Name:     "Amos Wambede",
				Bio:      "Amos was born and raised near Bwindi and has been a certified UWA guide for over 15 years. His passion for wildlife conservation is infectious, and he has an incredible talent for tracking gorilla families.",
				ImageURL: "https://picsum.photos/seed/ugguide1/300/300",
			},
		},
		{
			ID: "2", Title: "Rwenzori Mountain Climb", Region: "Western Uganda", Activity: tour.ActivityHiking,
			Duration: 9, Difficulty: tour.DifficultyChallenging, Price: 4500000,
			ImageURL:    "https://picsum.photos/seed/ugtour2/600/400",
			Description: "Conquer the legendary \"Mountains of the Moon.\" This challenging trek takes you through diverse ecosystems, from lush montane forests to alpine meadows, culminating in breathtaking views from Margherita Peak.",
			Itinerary: []tour.ItineraryDay{
				{Day: 1, Title: "Arrival and Briefing", Description: "Arrive at the base camp in Kasese for a full briefing and equipment check."},
				{Day: 2, Title: "The Ascent & Descent", Description: "Trek through various camps, acclimatizing and enjoying the unique flora and fauna. Summit Margherita Peak on day 7."},
				{Day: 9, Title: "Final Descent & Departure", Description: "Complete the final leg of your descent and transfer back to Kasese."},
			},
			SustainabilityFeatures: []string{
				"All waste is carried out",
				"Strictly follow designated trails",
				"Supports the local Bakonzo community guides and porters",
			},
			Guide: tour.Guide{
				Name:     "Esther Biira",
				Bio:      "Esther is one of the few female lead guides in the Rwenzoris. Her knowledge of the mountain's geology and unique vegetation is unparalleled.",
				ImageURL: "https://picsum.photos/seed/ugguide2/300/300",
			},
		},
		{
			ID: "3", Title: "Mabamba Swamp Shoebill Tour", Region: "Central Uganda", Activity: tour.ActivityBirdwatching,
			Duration: 1, Difficulty: tour.DifficultyEasy, Price: 700000,
			ImageURL:    "https://picsum.photos/seed/ugtour3/600/400",
			Description: "Take a traditional canoe through the papyrus reeds of Mabamba Swamp on Lake Victoria to find the elusive and prehistoric-looking shoebill stork, one of the most sought-after birds in Africa.",
			Itinerary: []tour.ItineraryDay{
				{Day: 1, Title: "Canoe Expedition", Description: "An early morning start from Entebbe to the Mabamba landing site. Spend 3-4 hours navigating the swamp channels with an expert local guide."},
			},
			SustainabilityFeatures: []string{
				"Empowers local canoe guides",
				"Tour fees contribute to the conservation of the wetland",
				"Promotes non-invasive wildlife observation",
			},
			Guide: tour.Guide{
				Name:     "John Okello",
				Bio:      "John has been paddling these waters since he was a boy. His sharp eyes can spot a shoebill from a remarkable distance.",
				ImageURL: "https://picsum.photos/seed/ugguide3/300/300",
			},
		},
		{
			ID: "4", Title: "Murchison Falls Safari", Region: "Northern Uganda", Activity: tour.ActivityWildlife,
			Duration: 4, Difficulty: tour.DifficultyModerate, Price: 3500000,
			ImageURL:    "https://picsum.photos/seed/ugtour4/600/400",
			Description: "Experience the world's most powerful waterfall and diverse wildlife.",
		},
		{
			ID: "5", Title: "Sipi Falls Wellness Retreat", Region: "Eastern Uganda", Activity: tour.ActivityWellness,
			Duration: 3, Difficulty: tour.DifficultyEasy, Price: 1800000,
			ImageURL:    "https://picsum.photos/seed/ugtour5/600/400",
			Description: "Yoga and meditation by stunning waterfalls.",
		},
		{
			ID: "6", Title: "Queen Elizabeth Park Discovery", Region: "Western Uganda", Activity: tour.ActivityWildlife,
			Duration: 5, Difficulty: tour.DifficultyModerate, Price: 4000000,
			ImageURL:    "https://picsum.photos/seed/ugtour6/600/400",
			Description: "Home to tree-climbing lions and the Kazinga Channel.",
		},
	}
}

func seedNews() []article.Article {
	return []article.Article{
		{
			ID: "1", Title: "Major Reforestation Drive in Budongo Forest",
			Excerpt:  "We planted over 10,000 native saplings this past quarter, protecting vital chimpanzee habitats.",
			Content:  "This quarter our reforestation teams, together with community volunteers from villages bordering Budongo Forest, planted more than 10,000 native saplings across degraded buffer zones. The new growth will reconnect fragmented chimpanzee habitat and provide sustainable firewood lots for local households.",
			ImageURL: "https://picsum.photos/seed/ugnews1/600/400",
			Category: article.CategoryConservation, Date: "Oct 28, 2023",
		},
		{
			ID: "2", Title: "Urgent Flood Relief in Kasese District",
			Excerpt:  "Our team is on the ground providing essential supplies to families affected by the recent floods from River Nyamwamba.",
			Content:  "Heavy rains caused River Nyamwamba to burst its banks, displacing hundreds of families in Kasese District. Our relief teams are distributing clean water, food, medical supplies, and temporary shelter, and we are coordinating with district leaders on longer-term rebuilding.",
			ImageURL: "https://picsum.photos/seed/ugnews2/600/400",
			Category: article.CategoryReliefUpdate, Date: "Oct 25, 2023",
		},
		{
			ID: "3", Title: "Discovering the Beauty of Sipi Falls",
			Excerpt:  "A look back at our latest eco-tour, balancing adventure with responsible travel in Eastern Uganda.",
			Content:  "Our Sipi Falls retreat wrapped up last weekend with a group of twelve travellers who hiked the three-falls circuit, visited a smallholder coffee cooperative, and left the trails cleaner than they found them. Tour fees from the trip fund our school program in the Kapchorwa area.",
			ImageURL: "https://picsum.photos/seed/ugnews3/600/400",
			Category: article.CategoryTravel, Date: "Oct 22, 2023",
		},
		{
			ID: "4", Title: "The Importance of Ranger Patrols",
			Excerpt:  "Learn how our funding supports the brave rangers of Uganda Wildlife Authority who protect our national parks from poachers and illegal activity.",
			Content:  "Ranger patrols are the front line of conservation. Donations to our habitat protection fund pay for patrol rations, GPS units, and boots, letting UWA rangers spend more days in the field removing snares and deterring illegal activity inside the parks.",
			ImageURL: "https://picsum.photos/seed/ugblog4/800/500",
			Category: article.CategoryConservation, Date: "October 15, 2023",
		},
		{
			ID: "5", Title: "A Day in the Life of a Kampala Volunteer",
			Excerpt:  "An interview with one of our dedicated volunteers, sharing their experience sorting supplies and coordinating logistics for our relief efforts.",
			Content:  "We sat down with one of our Kampala warehouse volunteers to talk about what a relief shipment looks like from the inside: the early-morning sorting shifts, the manifest checks, and the moment a loaded truck finally rolls out toward the affected district.",
			ImageURL: "https://picsum.photos/seed/ugblog5/800/500",
			Category: article.CategoryReliefUpdate, Date: "October 10, 2023",
		},
	}
}

func seedTeam() []team.Member {
	return []team.Member{
		{
			ID: "1", Name: "Dr. Grace Nakato", Role: "Founder & Lead Conservationist",
			Bio:      "With a Ph.D. in Environmental Science from Makerere University, Grace founded Greenvours to connect responsible tourism with tangible conservation in Uganda.",
			ImageURL: "https://picsum.photos/seed/ugteam1/400/400",
		},
		{
			ID: "2", Name: "David Mwesige", Role: "Head of Eco-Tours",
			Bio:      "An experienced guide with 15+ years leading safaris, David ensures all our trips are safe, authentic, and respectful of Uganda's natural heritage.",
			ImageURL: "https://picsum.photos/seed/ugteam2/400/400",
		},
		{
			ID: "3", Name: "Sarah Achen", Role: "Director of Community Aid",
			Bio:      "Sarah coordinates our relief efforts, working tirelessly with local leaders in regions like Karamoja to deliver aid where it's needed most.",
			ImageURL: "https://picsum.photos/seed/ugteam3/400/400",
		},
	}
}

func seedProjects() []project.Project {
	return []project.Project{
		{
			ID: "1", Name: "Shoebill Stork Conservation", Location: "Mabamba Bay, Lake Victoria",
			Description:     "Working with local fishing communities to protect the nesting sites of the iconic shoebill stork and reduce human-wildlife conflict.",
			LongDescription: "The Mabamba Bay wetland is a critical habitat for the endangered shoebill stork. We partner with local fishermen, training them as paid guides and site monitors, creating an economic incentive for conservation. We also conduct regular population surveys, clear invasive plant species that threaten nesting areas, and run educational campaigns in nearby villages.",
			ImageURL:        "https://picsum.photos/seed/ugproject1/600/400",
			Goals: []string{
				"Monitor and protect at least 15 active shoebill nests per season.",
				"Train and equip 20 local fishermen as conservation guides.",
				"Restore 5 hectares of native papyrus habitat.",
				"Reduce poaching and egg collection incidents by 90%.",
			},
			ImpactStats: []project.ImpactStat{
				{Value: "30+", Label: "Local Guides Trained"},
				{Value: "85%", Label: "Increase in Shoebill Sightings"},
				{Value: "12", Label: "Hectares of Wetland Restored"},
			},
			GalleryImages: []string{
				"https://picsum.photos/seed/proj1gal1/600/400",
				"https://picsum.photos/seed/proj1gal2/600/400",
				"https://picsum.photos/seed/proj1gal3/600/400",
			},
		},
		{
			ID: "2", Name: "Kibale Forest Reforestation", Location: "Kibale, Western Uganda",
			Description:     "Establishing tree nurseries and reforesting degraded areas bordering Kibale National Park to expand the corridor for chimpanzees and other primates.",
			LongDescription: "Deforestation on the borders of Kibale National Park threatens wildlife corridors. This project works with local landowners to reforest these critical buffer zones through three community-managed tree nurseries that grow thousands of native saplings, providing communities with sustainable sources of firewood and medicinal plants.",
			ImageURL:        "https://picsum.photos/seed/ugproject2/600/400",
			Goals: []string{
				"Plant 50,000 native trees annually.",
				"Establish 3 community-owned tree nurseries.",
				"Reforest 100 hectares of degraded land.",
				"Provide alternative livelihood training to 200 households.",
			},
			ImpactStats: []project.ImpactStat{
				{Value: "125,000+", Label: "Native Trees Planted"},
				{Value: "250", Label: "Hectares Reforested"},
				{Value: "500+", Label: "Households Benefitting"},
			},
			GalleryImages: []string{
				"https://picsum.photos/seed/proj2gal1/600/400",
				"https://picsum.photos/seed/proj2gal2/600/400",
				"https://picsum.photos/seed/proj2gal3/600/400",
			},
		},
		{
			ID: "3", Name: "Mountain Gorilla Habitat Protection", Location: "Bwindi Impenetrable National Park",
			Description:     "Funding anti-poaching patrols and community education programs to ensure the long-term survival of the mountain gorilla population.",
			LongDescription: "The mountain gorilla population remains under constant threat from poaching snares and human-wildlife conflict. This project supports the Uganda Wildlife Authority by funding ranger patrols with essential equipment like GPS units, boots, and rations, and runs an intensive education program in schools and villages bordering the park.",
			ImageURL:        "https://picsum.photos/seed/ugproject3/600/400",
			Goals: []string{
				"Fund 1,200 ranger patrol days per year.",
				"Remove 500+ poaching snares from the park annually.",
				"Conduct conservation education in 25 local schools.",
				"Mitigate human-gorilla conflict through community engagement.",
			},
			ImpactStats: []project.ImpactStat{
				{Value: "4,000+", Label: "Snares Removed to Date"},
				{Value: "50+", Label: "Rangers Equipped"},
				{Value: "10,000", Label: "Students Reached"},
			},
			GalleryImages: []string{
				"https://picsum.photos/seed/proj3gal1/600/400",
				"https://picsum.photos/seed/proj3gal2/600/400",
				"https://picsum.photos/seed/proj3gal3/600/400",
			},
		},
	}
}

func seedPrograms() []program.Program {
	return []program.Program{
		{
			ID: "1", Title: "Community Conservation Workshops",
			Description:     "We run workshops for local communities on sustainable agriculture, waste management, and the economic benefits of conservation.",
			LongDescription: "Our Community Conservation Workshops are hands-on, interactive sessions designed to empower local communities as the primary stewards of their environment. We cover topics ranging from soil conservation techniques and organic farming to creating small-scale eco-tourism enterprises, fostering a sustainable model where both people and nature can thrive.",
			CallToAction:    "View Workshop Schedule",
			ImageURL:        "https://picsum.photos/seed/ugedu1/600/400",
			TargetAudience:  "Farmers, community leaders, and small business owners living near protected areas.",
			GalleryImages: []string{
				"https://picsum.photos/seed/edugal1_1/600/400",
				"https://picsum.photos/seed/edugal1_2/600/400",
			},
			Schedule: []program.Session{
				{Date: "Nov 15, 2023", Topic: "Intro to Permaculture", Location: "Kasese Town Hall"},
				{Date: "Dec 05, 2023", Topic: "Waste-to-Wealth: Composting & Briquettes", Location: "Fort Portal Youth Center"},
				{Date: "Jan 20, 2024", Topic: "Beekeeping for Biodiversity", Location: "Bwindi Community Center"},
			},
		},
		{
			ID: "2", Title: "Future Stewards School Program",
			Description:     "Educational materials for schools, offering free, downloadable lesson plans and classroom visits to inspire young minds about the natural world.",
			LongDescription: "The Future Stewards School Program aims to ignite a passion for conservation in the next generation. We partner with primary and secondary schools across Uganda to provide engaging, curriculum-aligned resources, including illustrated booklets, interactive classroom activities, and a \"Ranger for a Day\" experience where students meet real wildlife rangers.",
			CallToAction:    "Access Free Resources",
			ImageURL:        "https://picsum.photos/seed/ugedu2/600/400",
			TargetAudience:  "Primary and secondary school students and teachers in Uganda.",
			GalleryImages: []string{
				"https://picsum.photos/seed/edugal2_1/600/400",
				"https://picsum.photos/seed/edugal2_2/600/400",
			},
			Schedule: []program.Session{
				{Date: "Ongoing", Topic: "Resource Pack Download", Location: "Online"},
				{Date: "Feb 10, 2024", Topic: "Live Q&A with a Wildlife Vet", Location: "Online Webinar"},
				{Date: "Mar 22, 2024", Topic: "National School Conservation Art Contest Begins", Location: "Nationwide"},
			},
		},
	}
}

func seedRelief() []relief.Project {
	return []relief.Project{
		{
			ID: "1", Title: "Karamoja Region Food Security Response",
			Description: "A prolonged dry spell in the Karamoja sub-region is causing severe food shortages. Our teams are partnering with local leaders to distribute emergency food supplies, high-nutrient supplements for children, and drought-resistant seeds for future planting.",
			Status:      relief.StatusActive,
			ImageURL:    "https://picsum.photos/seed/ugrelief1/600/400",
			Goal:        380000000,
			Raised:      285000000,
		},
		{
			ID: "2", Title: "Kasese Flood Recovery",
			Description: "Flooding from River Nyamwamba displaced hundreds of families. We delivered clean water, food, medical supplies, and temporary shelter, and supported the rebuilding of two community clinics.",
			Status:      relief.StatusCompleted,
			ImageURL:    "https://picsum.photos/seed/ugrelief2/600/400",
			Goal:        150000000,
			Raised:      150000000,
		},
	}
}

func seedHowWeHelp() []sitecontent.HowWeHelpItem {
	return []sitecontent.HowWeHelpItem{
		{ID: "1", Title: "Essential Supplies", Description: "Distribution of clean water, food, medical supplies, and temporary shelter."},
		{ID: "2", Title: "Local Partnerships", Description: "Working with trusted local organizations to ensure aid reaches those who need it most."},
		{ID: "3", Title: "100% Transparency", Description: "Donations to specific relief funds are used exclusively for those efforts, with reports available."},
	}
}

func seedVision() sitecontent.VisionContent {
	return sitecontent.VisionContent{
		Title:    "Our Mission & Impact",
		Content:  "We exist to protect our planet's most precious ecosystems and support the communities who call them home. Your support translates into real, measurable action.",
		ImageURL: "https://picsum.photos/seed/ugmission/600/400",
	}
}

func seedContactInfo() sitecontent.ContactInfo {
	return sitecontent.ContactInfo{
		BookingEmail: "bookings@greenvours.org",
		GeneralEmail: "info@greenvours.org",
		Address:      "123 Conservation Way, Kololo, Kampala, Uganda",
		ImageURL:     "https://picsum.photos/seed/ugcontact/600/400",
	}
}
