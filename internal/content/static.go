package content

import (
	"fmt"
	"time"

	"github.com/suyashwaghate123/happyhomesbackend/internal/utils"
)

// Bundled fallback dataset. Served whenever the document store is absent,
// errors, or returns an empty result for a category. Fixture ids are small
// numeric strings so detail lookups can match them against path params.

var staticSiteSettings = SiteSettings{
	ID:             "1",
	SiteName:       "Happy Homes",
	Tagline:        "Assisted Living",
	Logo:           "/images/happyhomeslogo.png",
	LogoLight:      "/images/happyhomeslogo.png",
	Favicon:        "/images/happyhomesfivicon.png",
	OpenHours:      "Mon-Sun 10:00 AM - 5:00 PM",
	Phone:          "+91 92099 16910",
	AlternatePhone: "+91 92099 16910",
	Email:          "info@happyhomes.com",
	Whatsapp:       "+919209916910",
	Address:        "Happy Homes Care, Sai Satyam Park, Khandve Nagar, Wagholi, Pune, Maharashtra 412207",
	MapEmbedURL:    "https://www.google.com/maps/embed?pb=happy-homes-wagholi",
	SocialLinks: SocialLinks{
		Facebook:  "https://facebook.com/happyhomes",
		Twitter:   "https://twitter.com/happyhomes",
		LinkedIn:  "https://linkedin.com/company/happyhomes",
		Instagram: "https://instagram.com/happyhomes",
		YouTube:   "https://youtube.com/happyhomes",
	},
	Copyright: fmt.Sprintf("Copyright %d Happy Homes. All Rights Reserved.", time.Now().Year()),
}

var staticAbout = About{
	ID:              "1",
	Title:           "About Happy Homes",
	Subtitle:        "A Home Where Seniors Live with Dignity, Joy & Purpose",
	Description:     "Happy Homes is a premier assisted living facility in Pune, dedicated to providing exceptional care for senior citizens. We offer Independent Living, Assisted Living, and Skilled Nursing Care with 24x7 trained nursing & caregiver support.",
	LongDescription: "At Happy Homes, we understand that moving to a care facility is a significant decision for families. That's why we've created an environment that feels like a second family. Our team of experienced caregivers, nurses, and doctors work together to ensure each resident receives personalized attention and care.",
	Image:           "/images/imageplaceholder.jpg",
	VideoURL:        "https://www.youtube.com/watch?v=XHOmBV4js_E",
	Features: []string{
		"24x7 trained nursing & caregiver support",
		"Daily vitals monitoring & medication management",
		"Doctor visits & emergency medical assistance",
		"Nutritious vegetarian meals (6 meals daily)",
		"Physiotherapy, occupational therapy & counselling",
	},
	Mission: "To provide dignified, compassionate, and high-quality care for senior citizens, ensuring they live their golden years with comfort, happiness, and respect.",
	Vision:  "To be the most trusted and preferred senior care facility in India, known for excellence in care, innovation, and creating a loving community for elders.",
}

var staticSliders = []Slider{
	{
		ID:          "1",
		Title:       "Bedridden Care",
		Subtitle:    "24/7 Nursing Support",
		Description: "Dedicated support for fully dependent senior residents. Condition-based nutritious meals, skilled nursing, physiotherapy support, and comfortable, well-equipped rooms.",
		Image:       "/images/imageplaceholder.jpg",
		ButtonText:  "Learn More",
		ButtonLink:  "/services",
		IsActive:    true,
		Order:       1,
	},
	{
		ID:          "2",
		Title:       "Assisted Living",
		Subtitle:    "Personal Daily Assistance",
		Description: "Personalized daily assistance to maintain independent living. Attentive nursing, required physiotherapy, and safe, supportive rooms for your loved ones.",
		Image:       "/images/imageplaceholder.jpg",
		ButtonText:  "Our Services",
		ButtonLink:  "/services",
		IsActive:    true,
		Order:       2,
	},
	{
		ID:          "3",
		Title:       "Independent Senior Living",
		Subtitle:    "Active Community Lifestyle",
		Description: "Comfortable community lifestyle for active senior residents. Healthy tailored meals, wellness and physiotherapy options, and relaxed, well-equipped rooms.",
		Image:       "/images/imageplaceholder.jpg",
		ButtonText:  "Explore Facility",
		ButtonLink:  "/living-options",
		IsActive:    true,
		Order:       3,
	},
}

var staticServices = []Service{
	{
		ID:               "1",
		Title:            "Bedridden Care with 24/7 Nursing Support",
		ShortDescription: "Dedicated support for fully dependent senior residents with round-the-clock nursing care.",
		Description:      "Our Bedridden Care program provides comprehensive support for fully dependent senior residents. We offer condition-based nutritious meals, skilled nursing, physiotherapy support, and comfortable, well-equipped rooms designed for complete care and comfort.",
		Icon:             "icon-6",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"24/7 dedicated nursing supervision for high-dependency residents",
			"Customized diet plans based on medical condition and doctor recommendations",
			"Bedside physiotherapy routines to maintain mobility and reduce stiffness",
			"Pressure-relief bedding and safety-focused room setup",
			"Medication management & monitoring to ensure stability and comfort",
		},
		IsActive: true,
		Order:    1,
	},
	{
		ID:               "2",
		Title:            "Assisted Living with Personal Daily Assistance",
		ShortDescription: "Personalized daily assistance to help seniors maintain independent living with dignity.",
		Description:      "Our Assisted Living program provides personalized nutrition, attentive nursing, required physiotherapy, and safe, supportive rooms. We focus on helping seniors maintain their independence while receiving the support they need.",
		Icon:             "icon-7",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Dedicated personal assistance for dressing, bathing, mobility, and daily tasks",
			"Activity-based recovery programs such as light exercises and memory games",
			"Timely nutritious meals designed to support energy and recovery",
			"Daily physiotherapy sessions as needed",
			"Comfortable rooms with safety features and easy accessibility",
			"Regular health monitoring to track progress and ensure wellbeing",
		},
		IsActive: true,
		Order:    2,
	},
	{
		ID:               "3",
		Title:            "Independent Senior Living with Optional Care",
		ShortDescription: "Comfortable community lifestyle for active senior residents with optional care services.",
		Description:      "Our Independent Senior Living offers healthy tailored meals, wellness and physiotherapy options, and relaxed, well-equipped rooms for active seniors who want to enjoy community living.",
		Icon:             "icon-8",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Community interaction activities like group discussions and hobby circles",
			"Engaging games and recreation such as chess, carrom, and outdoor walks",
			"Optional fitness and wellness programs including yoga and meditation",
			"Nutritious meals that promote active and healthy living",
			"Private, comfortable rooms for a peaceful, independent lifestyle",
			"Secure environment with staff available for assistance whenever needed",
		},
		IsActive: true,
		Order:    3,
	},
	{
		ID:               "4",
		Title:            "Condition-Based Nutritious Meals",
		ShortDescription: "Six nutritious meals daily, customized according to dietary requirements and health conditions.",
		Description:      "Our in-house kitchen prepares fresh, nutritious meals six times a day. We cater to various dietary requirements including diabetic-friendly, low-sodium, vegetarian, Jain, soft food, and liquid diets as per medical recommendations.",
		Icon:             "icon-6",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Six nutritious meals daily",
			"Individual dietary preferences considered",
			"Allergy-safe meal preparations",
			"Soft food and liquid diet options",
			"Festival-specific and fasting meals",
			"Meals prepared under nutrition expert guidance",
		},
		IsActive: true,
		Order:    4,
	},
	{
		ID:               "5",
		Title:            "Daily Physiotherapy & Wellness Programs",
		ShortDescription: "Comprehensive physiotherapy and wellness programs to maintain physical health and mobility.",
		Description:      "Our wellness programs include daily physiotherapy sessions, yoga, meditation, and fitness activities designed specifically for senior residents to maintain their physical health, flexibility, and overall well-being.",
		Icon:             "icon-7",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Daily physiotherapy sessions",
			"Yoga and meditation classes",
			"Light workout programs",
			"Stretching exercises",
			"Occupational therapy",
			"Cognitive activities and memory exercises",
		},
		IsActive: true,
		Order:    5,
	},
	{
		ID:               "6",
		Title:            "Fully Furnished Senior-Friendly Private Rooms",
		ShortDescription: "Comfortable, safe, and well-equipped rooms designed specifically for senior residents.",
		Description:      "Our rooms are fully furnished with senior-friendly amenities including comfortable beds, spacious wardrobes, attached bathrooms, emergency call buttons, and safety features for a comfortable stay.",
		Icon:             "icon-8",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Comfortable senior-friendly beds",
			"Spacious wardrobe",
			"Attached/dedicated washroom",
			"Emergency call/panic button",
			"Intercom facility",
			"Soft lighting & night lamp",
		},
		IsActive: true,
		Order:    6,
	},
	{
		ID:               "7",
		Title:            "24/7 Caretakers and Emergency Support",
		ShortDescription: "Round-the-clock caregiver support and emergency medical assistance.",
		Description:      "Our trained caregivers are available 24/7 to provide compassionate care and immediate assistance. We have emergency response systems and coordination with hospitals for any medical emergencies.",
		Icon:             "icon-6",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"24/7 trained caregiver support",
			"Emergency medical response",
			"Oxygen and suctioning support",
			"Hospital coordination",
			"Family communication",
			"Night duty staff",
		},
		IsActive: true,
		Order:    7,
	},
	{
		ID:               "8",
		Title:            "Regular Doctor Visits & Vital Monitoring",
		ShortDescription: "Comprehensive medical care with regular doctor consultations and health monitoring.",
		Description:      "We provide regular doctor visits, daily vital monitoring, medication management, and coordination with specialists. Our medical team ensures timely health tracking and care adjustments.",
		Icon:             "icon-7",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Daily vital checkups",
			"Medication dispensing",
			"Diabetes management (sugar charting, insulin administration)",
			"Catheter & Ryle's tube management",
			"Bedsore & wound care",
			"Coordination with doctors & family",
		},
		IsActive: true,
		Order:    8,
	},
	{
		ID:               "9",
		Title:            "Housekeeping & Laundry Services",
		ShortDescription: "Complete housekeeping and laundry services for a clean and comfortable living environment.",
		Description:      "Our housekeeping team ensures daily cleaning and sanitation of rooms and common areas. We also provide complete laundry services for residents' convenience.",
		Icon:             "icon-8",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Daily room cleaning",
			"Bed making and linen change",
			"Laundry and ironing services",
			"Common area sanitization",
			"Regular fumigation & mosquito control",
		},
		IsActive: true,
		Order:    9,
	},
	{
		ID:               "10",
		Title:            "Safe & Supportive Environment",
		ShortDescription: "Secure facility with CCTV monitoring, trained security staff, and safety protocols.",
		Description:      "Happy Homes provides a safe and secure environment with 24/7 security staff, CCTV monitoring, controlled entry, fire safety measures, and emergency response systems in every room.",
		Icon:             "icon-6",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"24/7 security staff",
			"CCTV monitoring",
			"Controlled entry",
			"Trained & background-verified staff",
			"Fire safety measures",
			"Emergency response system in rooms",
		},
		IsActive: true,
		Order:    10,
	},
	{
		ID:               "11",
		Title:            "Social Activities, Games & Cultural Events",
		ShortDescription: "Engaging activities to keep residents mentally stimulated and socially connected.",
		Description:      "We believe in keeping our residents engaged and happy. Our activity program includes indoor games, cultural events, festival celebrations, birthday events, and regular social gatherings.",
		Icon:             "icon-7",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Music, karaoke & bhajans",
			"Indoor games & cognitive activities",
			"Festival celebrations & birthday events",
			"Library & reading sessions",
			"Morning walks & outdoor recreation",
		},
		IsActive: true,
		Order:    11,
	},
	{
		ID:               "12",
		Title:            "Yoga, Meditation & Fitness Sessions",
		ShortDescription: "Holistic wellness programs including yoga, meditation, and fitness activities.",
		Description:      "Our wellness programs include daily yoga sessions, meditation, breathing exercises, and light fitness activities designed to promote physical and mental well-being for senior residents.",
		Icon:             "icon-8",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Morning yoga sessions",
			"Meditation & breathing exercises",
			"Light workout programs",
			"Stretching exercises",
			"Group wellness activities",
		},
		IsActive: true,
		Order:    12,
	},
	{
		ID:               "13",
		Title:            "Medication Management & Health Tracking",
		ShortDescription: "Systematic medication management and comprehensive health tracking for all residents.",
		Description:      "Our nursing team ensures timely medication dispensing, maintains detailed health records, and tracks progress for each resident to ensure optimal health outcomes.",
		Icon:             "icon-6",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Timely medication dispensing",
			"Health record maintenance",
			"Progress tracking",
			"Doctor recommendations follow-up",
			"Family health updates",
		},
		IsActive: true,
		Order:    13,
	},
	{
		ID:               "14",
		Title:            "High-Speed Wi-Fi & Modern Amenities",
		ShortDescription: "Modern amenities including high-speed Wi-Fi, 24/7 hot water, and comfortable facilities.",
		Description:      "We provide modern amenities for comfortable living including high-speed Wi-Fi connectivity, 24/7 hot water, well-maintained common areas, and recreational facilities.",
		Icon:             "icon-7",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"High-speed Wi-Fi",
			"24/7 hot water",
			"Well-maintained common areas",
			"Recreational facilities",
			"Garden and outdoor spaces",
		},
		IsActive: true,
		Order:    14,
	},
	{
		ID:               "15",
		Title:            "Community Engagement & Recreational Programs",
		ShortDescription: "Regular community programs and recreational activities for social interaction and enjoyment.",
		Description:      "Our community engagement programs include group discussions, hobby circles, cultural events, volunteer interactions, and various recreational activities to keep residents socially active and happy.",
		Icon:             "icon-8",
		Image:            "/images/imageplaceholder.jpg",
		Features: []string{
			"Group discussions",
			"Hobby circles",
			"Cultural events",
			"Volunteer interactions",
			"Community gatherings",
		},
		IsActive: true,
		Order:    15,
	},
}

var staticTeamMembers = []TeamMember{
	{
		ID:          "1",
		Name:        "Dr. Rajesh Sharma",
		Designation: "Medical Director",
		Image:       "/images/imageplaceholder.jpg",
		Description: "25+ years of experience in geriatric medicine",
		Social:      SocialLinks{Facebook: "#", Twitter: "#", LinkedIn: "#"},
		IsActive:    true,
		Order:       1,
	},
	{
		ID:          "2",
		Name:        "Mrs. Priya Kulkarni",
		Designation: "Care Manager",
		Image:       "/images/imageplaceholder.jpg",
		Description: "Expert in elder care management",
		Social:      SocialLinks{Facebook: "#", Twitter: "#", LinkedIn: "#"},
		IsActive:    true,
		Order:       2,
	},
	{
		ID:          "3",
		Name:        "Mr. Amit Deshmukh",
		Designation: "Administrator",
		Image:       "/images/imageplaceholder.jpg",
		Description: "Ensuring smooth facility operations",
		Social:      SocialLinks{Facebook: "#", Twitter: "#", LinkedIn: "#"},
		IsActive:    true,
		Order:       3,
	},
	{
		ID:          "4",
		Name:        "Sister Kavita Joshi",
		Designation: "Head Nurse",
		Image:       "/images/imageplaceholder.jpg",
		Description: "Leading our nursing team with dedication",
		Social:      SocialLinks{Facebook: "#", Twitter: "#", LinkedIn: "#"},
		IsActive:    true,
		Order:       4,
	},
}

var staticTestimonials = []Testimonial{
	{
		ID:          "1",
		Name:        "Ramesh Patil",
		Designation: "Son of Resident",
		Image:       "/images/imageplaceholder.jpg",
		Review:      "Happy Homes has been a blessing for our family. The care and attention my mother receives here is exceptional. The staff treats her like their own family member.",
		Rating:      5,
		IsActive:    true,
		Order:       1,
	},
	{
		ID:          "2",
		Name:        "Sunita Deshpande",
		Designation: "Daughter of Resident",
		Image:       "/images/imageplaceholder.jpg",
		Review:      "The facilities are excellent and the medical care is top-notch. My father has made wonderful friends here and looks forward to the daily activities.",
		Rating:      5,
		IsActive:    true,
		Order:       2,
	},
	{
		ID:          "3",
		Name:        "Dr. Anil Mehta",
		Designation: "Family Member",
		Image:       "/images/imageplaceholder.jpg",
		Review:      "As a doctor myself, I was very particular about the quality of medical care. Happy Homes exceeded my expectations. Their attention to detail in medication management is commendable.",
		Rating:      5,
		IsActive:    true,
		Order:       3,
	},
}

var staticGallery = []GalleryImage{
	{ID: "1", Title: "Beautiful Garden Area", Category: "facility", Image: "/images/imageplaceholder.jpg", IsActive: true, Order: 1},
	{ID: "2", Title: "Comfortable Rooms", Category: "rooms", Image: "/images/imageplaceholder.jpg", IsActive: true, Order: 2},
	{ID: "3", Title: "Dining Hall", Category: "facility", Image: "/images/imageplaceholder.jpg", IsActive: true, Order: 3},
	{ID: "4", Title: "Recreation Area", Category: "activities", Image: "/images/imageplaceholder.jpg", IsActive: true, Order: 4},
	{ID: "5", Title: "Medical Room", Category: "medical", Image: "/images/imageplaceholder.jpg", IsActive: true, Order: 5},
	{ID: "6", Title: "Yoga Session", Category: "activities", Image: "/images/imageplaceholder.jpg", IsActive: true, Order: 6},
}

var staticBlogPosts = []BlogPost{
	{
		ID:       "1",
		Title:    "5 Ways To Help Seniors Fight Loneliness",
		Slug:     "5-ways-to-help-seniors-fight-loneliness",
		Excerpt:  "Loneliness is a common challenge for seniors. Here are five effective ways to help your elderly loved ones stay connected and happy.",
		Content:  "Loneliness can significantly impact the health and well-being of seniors. Here are five proven strategies to help combat isolation:\n\n1. Regular Communication: Make it a habit to call or video chat regularly.\n\n2. Encourage Social Activities: Help them join clubs or groups.\n\n3. Technology Training: Teach them to use smartphones and social media.\n\n4. Pet Companionship: Consider a pet for emotional support.\n\n5. Professional Care: Consider quality care facilities where social interaction is part of daily life.",
		Image:    "/images/imageplaceholder.jpg",
		Author:   "Dr. Priya Sharma",
		Category: "Health Tips",
		Date:     "2024-01-15",
		IsActive: true,
		Order:    1,
	},
	{
		ID:       "2",
		Title:    "Importance of Proper Nutrition for Elderly",
		Slug:     "importance-of-proper-nutrition-for-elderly",
		Excerpt:  "Good nutrition is crucial for seniors. Learn about the essential nutrients and dietary considerations for elderly health.",
		Content:  "As we age, our nutritional needs change. Seniors require specific nutrients to maintain their health and vitality.\n\nKey nutrients for seniors include:\n- Calcium and Vitamin D for bone health\n- Fiber for digestive health\n- Protein for muscle maintenance\n- Omega-3 fatty acids for heart and brain health\n\nAt Happy Homes, our meals are designed by nutritionists to meet these specific needs while keeping the food delicious and enjoyable.",
		Image:    "/images/imageplaceholder.jpg",
		Author:   "Nutritionist Meera Kulkarni",
		Category: "Nutrition",
		Date:     "2024-01-10",
		IsActive: true,
		Order:    2,
	},
	{
		ID:       "3",
		Title:    "Understanding Memory Care: A Guide for Families",
		Slug:     "understanding-memory-care-guide",
		Excerpt:  "Memory care is specialized support for those with Alzheimer's and dementia. Here's what families need to know.",
		Content:  "Memory care provides specialized support for individuals with Alzheimer's disease, dementia, and other memory-related conditions.\n\nKey aspects of memory care:\n- Structured daily routines\n- Safe and secure environment\n- Cognitive stimulation activities\n- Trained specialized staff\n- Family support programs",
		Image:    "/images/imageplaceholder.jpg",
		Author:   "Dr. Rajesh Sharma",
		Category: "Care Guide",
		Date:     "2024-01-05",
		IsActive: true,
		Order:    3,
	},
}

var staticEvents = []Event{
	{
		ID:          "1",
		Title:       "Diwali Celebration 2024",
		Date:        "2024-11-01",
		Time:        "6:00 PM",
		Location:    "Main Hall, Happy Homes",
		Description: "Join us for a grand Diwali celebration with cultural programs, rangoli competition, and festive dinner. Families are welcome!",
		Image:       "/images/imageplaceholder.jpg",
		IsActive:    true,
		Order:       1,
	},
	{
		ID:          "2",
		Title:       "Health Camp - Free Check-ups",
		Date:        "2024-02-15",
		Time:        "9:00 AM - 4:00 PM",
		Location:    "Medical Center",
		Description: "Free health check-up camp including blood pressure, sugar, eye test, and general physician consultation.",
		Image:       "/images/imageplaceholder.jpg",
		IsActive:    true,
		Order:       2,
	},
	{
		ID:          "3",
		Title:       "Yoga Workshop for Seniors",
		Date:        "2024-02-20",
		Time:        "7:00 AM",
		Location:    "Garden Area",
		Description: "Special yoga workshop focusing on gentle exercises suitable for seniors. Led by certified yoga instructor.",
		Image:       "/images/imageplaceholder.jpg",
		IsActive:    true,
		Order:       3,
	},
}

var staticStatistics = []Statistic{
	{ID: "1", Number: 150, Suffix: "+", Title: "Happy Residents", IsActive: true, Order: 1},
	{ID: "2", Number: 50, Suffix: "+", Title: "Trained Staff", IsActive: true, Order: 2},
	{ID: "3", Number: 10, Suffix: "+", Title: "Years Experience", IsActive: true, Order: 3},
	{ID: "4", Number: 98, Suffix: "%", Title: "Family Satisfaction", IsActive: true, Order: 4},
}

var staticFAQs = []FAQ{
	{
		ID:       "1",
		Question: "What services does Happy Homes offer?",
		Answer:   "Happy Homes provides Independent Living, Assisted Living, and Skilled Nursing Care for seniors. Our services include 24x7 trained nursing & caregiver support, daily vitals monitoring & medication management, doctor visits & emergency medical assistance, nutritious vegetarian meals, housekeeping & laundry services, social activities, physiotherapy, and assistance with daily living.",
		Category: "services",
		IsActive: true,
		Order:    1,
	},
	{
		ID:       "2",
		Question: "What medical assistance is included in the basic plan?",
		Answer:   "Our basic plan includes daily vital checkups, medication dispensing, diabetes management, catheter & Ryle's tube management, bedsore & wound care, assistance with feeding, 24x7 nurse-on-duty, emergency support including oxygen & suctioning, and coordination with doctors & family.",
		Category: "services",
		IsActive: true,
		Order:    2,
	},
	{
		ID:       "3",
		Question: "Does Happy Homes engage seniors in activities?",
		Answer:   "Yes! Our Activity Team prepares weekly & monthly engagement plans which include music, karaoke & bhajans, indoor games & cognitive activities, festival celebrations & birthday events, library & reading sessions, morning walks, meditation, yoga, movie time, and arts & crafts.",
		Category: "services",
		IsActive: true,
		Order:    3,
	},
	{
		ID:       "4",
		Question: "Can residents request food of their choice?",
		Answer:   "Yes. We offer a wholesome vegetarian meal plan and consider individual preferences, allergies, soft food / liquid diets, and festival-specific or fasting meals. Special medical diets may be supported depending on feasibility.",
		Category: "food",
		IsActive: true,
		Order:    4,
	},
	{
		ID:       "5",
		Question: "How does Happy Homes ensure nutrition?",
		Answer:   "At admission, we note dietary needs, restrictions, allergies, and special doctor recommendations. Our kitchen team prepares meals under the guidance of nutrition experts to ensure balanced, healthy, and delicious food for all residents.",
		Category: "food",
		IsActive: true,
		Order:    5,
	},
	{
		ID:       "6",
		Question: "How is pricing decided at Happy Homes?",
		Answer:   "Pricing depends on the level of care needed (Independent / Assisted / Nursing Care), the type of occupancy (single, shared, twin), and the duration of stay. Contact us for a detailed quote based on your requirements.",
		Category: "pricing",
		IsActive: true,
		Order:    6,
	},
	{
		ID:       "7",
		Question: "Does pricing change as a resident's care needs change?",
		Answer:   "Yes. If a resident requires a higher level of support in the future, their care plan and charges may be revised accordingly. We ensure transparent communication with families about any changes.",
		Category: "pricing",
		IsActive: true,
		Order:    7,
	},
	{
		ID:       "8",
		Question: "What is the admission process?",
		Answer:   "Our admission process involves booking an appointment/tour, assessment by our Care Team, selection of a care plan, documentation & agreement, payment of deposit, and move-in & orientation. Our team guides you through each step.",
		Category: "admission",
		IsActive: true,
		Order:    8,
	},
	{
		ID:       "9",
		Question: "What if a resident wants to discontinue the service?",
		Answer:   "Happy Homes follows fair exit policies as per the agreement. Residents can leave after providing the required notice as specified in the agreement.",
		Category: "admission",
		IsActive: true,
		Order:    9,
	},
	{
		ID:       "10",
		Question: "What is the visitor policy?",
		Answer:   "Visitors are welcome during visiting hours. This helps maintain routine and privacy for residents while ensuring your loved ones can spend quality time with family and friends.",
		Category: "visitors",
		IsActive: true,
		Order:    10,
	},
	{
		ID:       "11",
		Question: "Can family members stay overnight with residents?",
		Answer:   "Because our setting is designed specifically for senior care, overnight stays by family members are generally not encouraged. However, we do help arrange nearby accommodation for visiting family.",
		Category: "visitors",
		IsActive: true,
		Order:    11,
	},
	{
		ID:       "12",
		Question: "What facilities are provided in the rooms?",
		Answer:   "Rooms include comfortable senior-friendly beds, spacious wardrobe, attached/dedicated washroom, emergency call/panic button, intercom, soft lighting & night lamp, TV (in select rooms), and 24x7 housekeeping & laundry support.",
		Category: "rooms",
		IsActive: true,
		Order:    12,
	},
	{
		ID:       "13",
		Question: "How does Happy Homes ensure safety and security?",
		Answer:   "We ensure safety through 24x7 security staff, CCTV monitoring, controlled entry, trained caregivers & background-verified staff, fire safety measures, and emergency response systems in rooms.",
		Category: "safety",
		IsActive: true,
		Order:    13,
	},
	{
		ID:       "14",
		Question: "What hygiene measures do you follow?",
		Answer:   "Our hygiene protocols include daily cleaning & sanitation, disinfection of common areas, regular fumigation & mosquito control, clean kitchen practices, health monitoring of staff, and infection prevention protocols.",
		Category: "safety",
		IsActive: true,
		Order:    14,
	},
	{
		ID:       "15",
		Question: "Can I bring personal belongings or furniture?",
		Answer:   "Yes, residents may bring small personal items, photographs, or belongings that make them comfortable, as long as they do not disrupt safety or room arrangements.",
		Category: "general",
		IsActive: true,
		Order:    15,
	},
	{
		ID:       "16",
		Question: "Can residents go out with family?",
		Answer:   "Yes. Outings with family are allowed after basic sign-out procedures. We encourage family bonding while ensuring the safety and well-being of our residents.",
		Category: "general",
		IsActive: true,
		Order:    16,
	},
	{
		ID:       "17",
		Question: "Is short-term/temporary stay available?",
		Answer:   "Yes. Happy Homes offers short-term respite care, post-surgery recovery care, temporary stays for caregivers' holidays, and trial stays for families to experience our facility before making a long-term commitment.",
		Category: "general",
		IsActive: true,
		Order:    17,
	},
}

var staticLivingOptions = []LivingOption{
	{
		ID:          "1",
		Title:       "Bedridden Care",
		Description: "Comprehensive care for fully dependent senior residents with 24/7 nursing support, condition-based meals, and skilled medical care.",
		Price:       "Contact for Pricing",
		Image:       "/images/imageplaceholder.jpg",
		Amenities: []string{
			"24/7 dedicated nursing supervision",
			"Customized diet plans based on medical condition",
			"Bedside physiotherapy routines",
			"Pressure-relief bedding",
			"Medication management & monitoring",
		},
		IsActive: true,
		Order:    1,
	},
	{
		ID:          "2",
		Title:       "Assisted Living",
		Description: "Personalized daily assistance to maintain independent living with attentive nursing and safe, supportive rooms.",
		Price:       "Contact for Pricing",
		Image:       "/images/imageplaceholder.jpg",
		Amenities: []string{
			"Personal assistance for daily tasks",
			"Activity-based recovery programs",
			"Timely nutritious meals",
			"Daily physiotherapy sessions",
			"Regular health monitoring",
		},
		IsActive: true,
		Order:    2,
	},
	{
		ID:          "3",
		Title:       "Independent Senior Living",
		Description: "Comfortable community lifestyle for active senior residents with healthy meals, wellness programs, and recreational activities.",
		Price:       "Contact for Pricing",
		Image:       "/images/imageplaceholder.jpg",
		Amenities: []string{
			"Community interaction activities",
			"Games and recreation",
			"Optional fitness and wellness programs",
			"Private, comfortable rooms",
			"Secure environment with staff support",
		},
		IsActive: true,
		Order:    3,
	},
}

var staticHomePopup = HomePopup{
	ID:         "1",
	IsActive:   false,
	Title:      "Welcome to Happy Homes",
	Content:    "Schedule a free visit and see why families trust us for their loved ones.",
	Image:      "/images/imageplaceholder.jpg",
	ButtonText: "Book a Visit",
	ButtonLink: "/contact",
	ShowOnce:   true,
}

func init() {
	for i := range staticServices {
		staticServices[i].Slug = utils.Slugify(staticServices[i].Title)
	}
	for i := range staticEvents {
		staticEvents[i].Slug = utils.Slugify(staticEvents[i].Title)
	}
}
