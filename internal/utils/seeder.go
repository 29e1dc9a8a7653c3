package utils

import (
	"time"

	"lagnasohalaa/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDatabase wipes the content tables and loads the demo dataset.
func SeedDatabase(db *gorm.DB) error {
	logrus.Info("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Profile{},
		&models.WeddingService{},
		&models.BlogPost{},
		&models.SuccessStory{},
		&models.PricingPlan{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}

	if err := seedProfiles(db); err != nil {
		return err
	}
	if err := seedServices(db); err != nil {
		return err
	}
	if err := seedBlogPosts(db); err != nil {
		return err
	}
	if err := seedStories(db); err != nil {
		return err
	}
	if err := seedPricingPlans(db); err != nil {
		return err
	}
	if err := seedAdminUser(db); err != nil {
		return err
	}

	logrus.Info("Database seeded successfully")
	return nil
}

func seedProfiles(db *gorm.DB) error {
	profiles := []models.Profile{
		{
			Name: "Priya Sharma", Age: 26, Gender: "female", Height: "5'4\"",
			Religion: "Hindu", Community: "Brahmin", Location: "Pune, Maharashtra",
			Education: "MBA", Occupation: "Software Engineer",
			About: "Family-oriented person who loves music and traveling. Looking for a caring and understanding life partner.",
			Image: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=500&fit=crop",
			Verified: true, Premium: true,
		},
		{
			Name: "Rahul Patil", Age: 29, Gender: "male", Height: "5'10\"",
			Religion: "Hindu", Community: "Maratha", Location: "Mumbai, Maharashtra",
			Education: "B.Tech", Occupation: "Business Analyst",
			About: "Ambitious professional with a passion for cricket and cooking. Seeking a life partner who values family traditions.",
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=500&fit=crop",
			Verified: true, Premium: false,
		},
		{
			Name: "Sneha Kulkarni", Age: 24, Gender: "female", Height: "5'3\"",
			Religion: "Hindu", Community: "Brahmin", Location: "Nagpur, Maharashtra",
			Education: "M.Sc", Occupation: "Research Scientist",
			About: "Curious mind with love for reading and nature. Looking for someone who shares similar values and interests.",
			Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=500&fit=crop",
			Verified: true, Premium: true,
		},
		{
			Name: "Amit Deshmukh", Age: 31, Gender: "male", Height: "5'11\"",
			Religion: "Hindu", Community: "Maratha", Location: "Pune, Maharashtra",
			Education: "CA", Occupation: "Chartered Accountant",
			About: "Finance professional who enjoys traveling and photography. Looking for a supportive and caring life partner.",
			Image: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=500&fit=crop",
			Verified: true, Premium: true,
		},
		{
			Name: "Pooja Joshi", Age: 27, Gender: "female", Height: "5'5\"",
			Religion: "Hindu", Community: "Brahmin", Location: "Mumbai, Maharashtra",
			Education: "MBBS", Occupation: "Doctor",
			About: "Healthcare professional with a kind heart. Enjoys music, yoga, and spending quality time with family.",
			Image: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=500&fit=crop",
			Verified: true, Premium: false,
		},
		{
			Name: "Vikram Pawar", Age: 28, Gender: "male", Height: "5'9\"",
			Religion: "Hindu", Community: "Mali", Location: "Nashik, Maharashtra",
			Education: "B.E.", Occupation: "Civil Engineer",
			About: "Down-to-earth person who values honesty and simplicity. Looking for a life partner to build a beautiful future.",
			Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=500&fit=crop",
			Verified: true, Premium: false,
		},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}
	logrus.Infof("%d profiles created", len(profiles))
	return nil
}

func seedServices(db *gorm.DB) error {
	services := []models.WeddingService{
		{
			Name: "Premium Catering Services", Category: "Catering",
			Description: "Delicious multi-cuisine catering with traditional and modern dishes",
			Icon:        "UtensilsCrossed",
			Image:       "https://images.unsplash.com/photo-1555244162-803834f70033?w=800&h=600&fit=crop",
			PriceRange:  "₹500-₹2,000/plate", Rating: 4.8, Reviews: 234,
		},
		{
			Name: "Luxury Wedding Venues", Category: "Venue Booking",
			Description: "Beautiful venues with modern amenities and stunning decor",
			Icon:        "Building2",
			Image:       "https://images.unsplash.com/photo-1519167758481-83f29da8c776?w=800&h=600&fit=crop",
			PriceRange:  "₹1L-₹10L", Rating: 4.9, Reviews: 189,
		},
		{
			Name: "Floral Decoration & Mandap", Category: "Decoration",
			Description: "Stunning floral arrangements and traditional mandap decoration",
			Icon:        "Flower2",
			Image:       "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800&h=600&fit=crop",
			PriceRange:  "₹50K-₹5L", Rating: 4.7, Reviews: 156,
		},
		{
			Name: "Live Music & DJ Services", Category: "Music & DJ",
			Description: "Professional musicians and DJs for sangeet and reception",
			Icon:        "Music",
			Image:       "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=800&h=600&fit=crop",
			PriceRange:  "₹25K-₹2L", Rating: 4.6, Reviews: 142,
		},
		{
			Name: "Traditional Pandit Services", Category: "Pandit Services",
			Description: "Experienced pandits for all Hindu wedding rituals",
			Icon:        "Flame",
			Image:       "https://images.unsplash.com/photo-1583391733981-5ebb0bc41fca?w=800&h=600&fit=crop",
			PriceRange:  "₹11K-₹51K", Rating: 4.9, Reviews: 278,
		},
		{
			Name: "Bridal Makeup & Styling", Category: "Bridal Makeup",
			Description: "Professional makeup artists for bridal and guest makeup",
			Icon:        "Sparkles",
			Image:       "https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=800&h=600&fit=crop",
			PriceRange:  "₹15K-₹1L", Rating: 4.8, Reviews: 321,
		},
		{
			Name: "Wedding Photography & Videography", Category: "Photography",
			Description: "Capture your special moments with cinematic photography",
			Icon:        "Camera",
			Image:       "https://images.unsplash.com/photo-1606216794074-735e91aa2c92?w=800&h=600&fit=crop",
			PriceRange:  "₹50K-₹5L", Rating: 4.9, Reviews: 412,
		},
		{
			Name: "Bridal Jewelry & Accessories", Category: "Jewelry",
			Description: "Exquisite traditional and contemporary bridal jewelry",
			Icon:        "Gem",
			Image:       "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&h=600&fit=crop",
			PriceRange:  "₹10K-₹50L", Rating: 4.7, Reviews: 198,
		},
	}
	if err := db.Create(&services).Error; err != nil {
		return err
	}
	logrus.Infof("%d wedding services created", len(services))
	return nil
}

func seedBlogPosts(db *gorm.DB) error {
	posts := []models.BlogPost{
		{
			Title:   "Complete Wedding Planning Checklist 2024",
			Slug:    "wedding-planning-checklist-2024",
			Excerpt: "A comprehensive guide to planning your dream wedding with timeline and budget tips.",
			Content: "Planning a wedding can be overwhelming. Here is your complete guide...",
			Image:   "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&h=600&fit=crop",
			Author:  "Meera Kulkarni", Date: "2024-01-15", Category: "Planning", ReadTime: "8 min read",
		},
		{
			Title:   "How to Choose the Right Life Partner",
			Slug:    "how-to-choose-right-life-partner",
			Excerpt: "Expert advice on finding compatibility and building a strong foundation for marriage.",
			Content: "Choosing a life partner is one of the most important decisions...",
			Image:   "https://images.unsplash.com/photo-1522673607200-164d1b6ce486?w=800&h=600&fit=crop",
			Author:  "Dr. Rajesh Sharma", Date: "2024-01-10", Category: "Relationships", ReadTime: "6 min read",
		},
		{
			Title:   "Top 10 Wedding Tips for Brides & Grooms",
			Slug:    "top-10-wedding-tips",
			Excerpt: "Essential tips every couple should know before their big day.",
			Content: "Your wedding day should be stress-free and memorable...",
			Image:   "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?w=800&h=600&fit=crop",
			Author:  "Anjali Desai", Date: "2024-01-05", Category: "Planning", ReadTime: "5 min read",
		},
		{
			Title:   "Traditional vs Modern Wedding: Which is Right for You?",
			Slug:    "traditional-vs-modern-wedding",
			Excerpt: "Exploring the pros and cons of traditional and contemporary wedding styles.",
			Content: "Indian weddings have evolved over the years...",
			Image:   "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800&h=600&fit=crop",
			Author:  "Priya Singh", Date: "2023-12-28", Category: "Traditions", ReadTime: "7 min read",
		},
		{
			Title:   "Budget-Friendly Wedding Ideas That Look Expensive",
			Slug:    "budget-friendly-wedding-ideas",
			Excerpt: "Creative ways to have a stunning wedding without breaking the bank.",
			Content: "You dont need a massive budget to have a beautiful wedding...",
			Image:   "https://images.unsplash.com/photo-1530023367847-a683933f4172?w=800&h=600&fit=crop",
			Author:  "Rohit Mehta", Date: "2023-12-20", Category: "Budget", ReadTime: "6 min read",
		},
		{
			Title:   "Latest Mehendi Designs for 2024",
			Slug:    "latest-mehendi-designs-2024",
			Excerpt: "Trending mehendi patterns and designs for modern brides.",
			Content: "Mehendi is an integral part of Indian weddings...",
			Image:   "https://images.unsplash.com/photo-1610699159588-83e59a01e52f?w=800&h=600&fit=crop",
			Author:  "Kavita Patel", Date: "2023-12-15", Category: "Beauty", ReadTime: "4 min read",
		},
	}
	if err := db.Create(&posts).Error; err != nil {
		return err
	}
	logrus.Infof("%d blog posts created", len(posts))
	return nil
}

func seedStories(db *gorm.DB) error {
	stories := []models.SuccessStory{
		{
			CoupleName:  "Rahul & Priya",
			WeddingDate: "December 15, 2023",
			Location:    "Pune, Maharashtra",
			Story:       "We met through Lagna Sohalaa in early 2023. From the first conversation, we knew there was something special. After months of getting to know each other, we decided to take the next step. Our families connected beautifully, and we had a wonderful wedding celebration in Pune.",
			Quote:       "Thank you Lagna Sohalaa for helping us find each other! Our journey from strangers to life partners has been magical.",
			Image:       "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&h=600&fit=crop",
		},
		{
			CoupleName:  "Amit & Sneha",
			WeddingDate: "November 20, 2023",
			Location:    "Mumbai, Maharashtra",
			Story:       "Finding the right match seemed impossible until we joined Lagna Sohalaa. The platform made it easy to connect with like-minded individuals. We bonded over our shared love for travel and food, and the rest is history!",
			Quote:       "Forever grateful to Lagna Sohalaa for bringing us together. We couldn't have asked for better life partners!",
			Image:       "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?w=800&h=600&fit=crop",
		},
		{
			CoupleName:  "Vikram & Pooja",
			WeddingDate: "October 8, 2023",
			Location:    "Nagpur, Maharashtra",
			Story:       "Our families were searching for matches for years without success. Lagna Sohalaa's AI-powered matching system connected us based on our compatibility. We are now happily married and expecting our first child!",
			Quote:       "The best decision we made was trusting Lagna Sohalaa. They made finding true love effortless!",
			Image:       "https://images.unsplash.com/photo-1522673607200-164d1b6ce486?w=800&h=600&fit=crop",
		},
	}
	if err := db.Create(&stories).Error; err != nil {
		return err
	}
	logrus.Infof("%d success stories created", len(stories))
	return nil
}

func seedPricingPlans(db *gorm.DB) error {
	plans := []models.PricingPlan{
		{
			Name: "Free", Price: 0, Period: "month", Popular: false,
			Features: models.StringSlice{
				"Basic profile search",
				"5 profile contacts per month",
				"Standard customer support",
				"View limited profiles",
			},
		},
		{
			Name: "Premium", Price: 2499, Period: "month", Popular: true,
			Features: models.StringSlice{
				"AI-powered matching",
				"Unlimited profile contacts",
				"Priority customer support",
				"Advanced filters & search",
				"Verified badge on profile",
				"Profile highlighting",
				"Wedding services access",
			},
		},
		{
			Name: "Business", Price: 9999, Period: "month", Popular: false,
			Features: models.StringSlice{
				"All Premium features",
				"Vendor profile listing",
				"Featured in search results",
				"Lead generation tools",
				"Analytics dashboard",
				"Dedicated account manager",
				"Priority support 24/7",
			},
		},
	}
	if err := db.Create(&plans).Error; err != nil {
		return err
	}
	logrus.Infof("%d pricing plans created", len(plans))
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	hash, err := HashPassword("Admin@12345")
	if err != nil {
		return err
	}
	admin := models.User{
		FirstName:       "Admin",
		LastName:        "User",
		Email:           "admin@lagnasohalaa.com",
		Phone:           "+919000000001",
		Password:        hash,
		Gender:          "other",
		DateOfBirth:     time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Role:            "admin",
		IsEmailVerified: true,
		IsPhoneVerified: true,
		IsActive:        true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.Infof("admin user created: %s", admin.Email)
	return nil
}
