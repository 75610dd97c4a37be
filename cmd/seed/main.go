package main

import (
	"context"
	"log"

	"illusphere_backend/internal/adapter/persistence/repository"
	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/infrastructure/database"
	"illusphere_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
)

// Seeds the priced catalog. Safe to re-run: every row is upserted by slug,
// so existing ids (already referenced by submitted projects) are preserved.

type complexitySeed struct {
	name        string
	slug        string
	description string
	minPrice    int64
	maxPrice    int64
}

type serviceSeed struct {
	name        string
	slug        string
	description string
	category    entities.ServiceCategory
	icon        string
	basePrice   int64
	options     []complexitySeed
}

type additionalSeed struct {
	name        string
	slug        string
	description string
	icon        string
	minPrice    int64
	maxPrice    int64
}

func main() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()
	catalog := repository.NewCatalogDynamoRepository(ddb)

	log.Printf("[seed] seeding catalog...")

	var serviceCount, optionCount int
	for _, s := range services() {
		id, err := upsertService(ctx, catalog, s)
		if err != nil {
			log.Fatalf("[seed] service %s: %v", s.slug, err)
		}
		serviceCount++

		for _, opt := range s.options {
			if err := upsertComplexityOption(ctx, catalog, id, opt); err != nil {
				log.Fatalf("[seed] complexity option %s/%s: %v", s.slug, opt.slug, err)
			}
			optionCount++
		}
	}

	var additionalCount int
	for _, a := range additionalServices() {
		if err := upsertAdditionalService(ctx, catalog, a); err != nil {
			log.Fatalf("[seed] additional service %s: %v", a.slug, err)
		}
		additionalCount++
	}

	log.Printf("[seed] done: services=%d complexity_options=%d additional_services=%d",
		serviceCount, optionCount, additionalCount)
}

func upsertService(ctx context.Context, catalog interfaces.ICatalogRepository, s serviceSeed) (string, error) {
	existing, err := catalog.GetServiceBySlug(ctx, s.slug)
	if err != nil {
		return "", err
	}
	id := existing.ID
	if id == "" {
		id = uuid.NewString()
	}

	return id, catalog.PutService(ctx, entities.Service{
		ID:          id,
		Name:        s.name,
		Slug:        s.slug,
		Description: s.description,
		Category:    s.category,
		Icon:        s.icon,
		BasePrice:   s.basePrice,
		IsActive:    true,
	})
}

func upsertComplexityOption(ctx context.Context, catalog interfaces.ICatalogRepository, serviceID string, opt complexitySeed) error {
	existing, err := catalog.GetComplexityOptionBySlug(ctx, opt.slug)
	if err != nil {
		return err
	}
	id := existing.ID
	if id == "" {
		id = uuid.NewString()
	}

	return catalog.PutComplexityOption(ctx, entities.ComplexityOption{
		ID:          id,
		ServiceID:   serviceID,
		Name:        opt.name,
		Slug:        opt.slug,
		Description: opt.description,
		MinPrice:    opt.minPrice,
		MaxPrice:    opt.maxPrice,
	})
}

func upsertAdditionalService(ctx context.Context, catalog interfaces.ICatalogRepository, a additionalSeed) error {
	existing, err := catalog.GetAdditionalServiceBySlug(ctx, a.slug)
	if err != nil {
		return err
	}
	id := existing.ID
	if id == "" {
		id = uuid.NewString()
	}

	return catalog.PutAdditionalService(ctx, entities.AdditionalService{
		ID:          id,
		Name:        a.name,
		Slug:        a.slug,
		Description: a.description,
		Icon:        a.icon,
		MinPrice:    a.minPrice,
		MaxPrice:    a.maxPrice,
	})
}

func services() []serviceSeed {
	return []serviceSeed{
		{
			name: "Web Development", slug: "web-dev",
			description: "Custom web development solutions from landing pages to enterprise applications",
			category:    entities.ServiceCategoryTech, icon: "Code", basePrice: 3000000,
			options: []complexitySeed{
				{"Landing Page (3-5 pages)", "landing", "Simple landing page with 3-5 sections", 3000000, 7000000},
				{"Business Website (8-12 pages)", "business", "Complete business website with multiple pages", 8000000, 15000000},
				{"E-Commerce Platform", "ecommerce", "Full e-commerce platform with payment integration", 15000000, 35000000},
				{"Custom Web Application", "webapp", "Custom web application with advanced features", 25000000, 75000000},
			},
		},
		{
			name: "Mobile App Development", slug: "mobile-dev",
			description: "iOS and Android mobile application development",
			category:    entities.ServiceCategoryTech, icon: "Smartphone", basePrice: 12000000,
			options: []complexitySeed{
				{"Simple App (5-7 screens)", "simple", "Basic mobile app with essential features", 12000000, 25000000},
				{"Standard App (10-15 screens)", "standard", "Standard mobile app with moderate complexity", 25000000, 50000000},
				{"Complex App (20+ screens)", "complex", "Complex mobile app with advanced features", 50000000, 100000000},
				{"Enterprise App", "enterprise", "Enterprise-grade mobile application", 100000000, 200000000},
			},
		},
		{
			name: "AI Solutions & Chatbot", slug: "ai-solutions",
			description: "AI-powered solutions and intelligent chatbots",
			category:    entities.ServiceCategoryTech, icon: "Bot", basePrice: 7000000,
			options: []complexitySeed{
				{"Basic Chatbot (FAQ)", "basic-chatbot", "Simple FAQ chatbot", 7000000, 12000000},
				{"AI Chatbot (NLP)", "ai-chatbot", "AI-powered chatbot with natural language processing", 15000000, 30000000},
				{"Custom ML Model", "custom-ml", "Custom machine learning model", 30000000, 60000000},
				{"AI Integration Suite", "ai-suite", "Complete AI integration suite", 60000000, 120000000},
			},
		},
		{
			name: "Cloud Infrastructure & DevOps", slug: "cloud-devops",
			description: "Cloud infrastructure setup and DevOps services",
			category:    entities.ServiceCategoryTech, icon: "Cloud", basePrice: 5000000,
			options: []complexitySeed{
				{"Cloud Migration (Basic)", "migration", "Basic cloud migration service", 5000000, 10000000},
				{"CI/CD Pipeline Setup", "cicd", "Complete CI/CD pipeline implementation", 8000000, 15000000},
				{"Full Infrastructure", "full-infra", "Complete infrastructure setup", 20000000, 40000000},
				{"Enterprise Architecture", "enterprise-arch", "Enterprise-grade cloud architecture", 40000000, 80000000},
			},
		},
		{
			name: "UI/UX Design", slug: "ui-ux",
			description: "User interface and experience design",
			category:    entities.ServiceCategoryCreative, icon: "Palette", basePrice: 4000000,
			options: []complexitySeed{
				{"Website Design (5-8 pages)", "website-design", "Complete website UI/UX design", 4000000, 8000000},
				{"App Design (10-15 screens)", "app-design", "Mobile app UI/UX design", 6000000, 12000000},
				{"Design System + Prototype", "design-system", "Complete design system with prototype", 12000000, 25000000},
				{"Complete Brand Experience", "brand-experience", "Full brand experience design", 25000000, 50000000},
			},
		},
		{
			name: "Graphic Design", slug: "graphic-design",
			description: "Professional graphic design services",
			category:    entities.ServiceCategoryCreative, icon: "PenTool", basePrice: 1500000,
			options: []complexitySeed{
				{"Logo Design Only", "logo", "Professional logo design", 1500000, 4000000},
				{"Brand Identity Package", "brand-identity", "Complete brand identity package", 5000000, 12000000},
				{"Marketing Materials Kit", "marketing-kit", "Marketing materials design kit", 3000000, 8000000},
				{"Complete Visual System", "visual-system", "Complete visual design system", 15000000, 30000000},
			},
		},
		{
			name: "Social Media Management", slug: "social-media",
			description: "Social media management and content creation",
			category:    entities.ServiceCategoryCreative, icon: "Share2", basePrice: 2500000,
			options: []complexitySeed{
				{"1 Month (15 posts)", "1-month", "1 month social media management", 2500000, 2500000},
				{"3 Months (45 posts) - Save Rp 500.000", "3-months", "3 months social media management", 7000000, 7000000},
				{"6 Months (90 posts) - Save Rp 2.000.000", "6-months", "6 months social media management", 13000000, 13000000},
				{"12 Months (180 posts) - Save Rp 5.000.000", "12-months", "12 months social media management", 25000000, 25000000},
			},
		},
		{
			name: "Videography & Motion Graphics", slug: "videography",
			description: "Professional video production and motion graphics",
			category:    entities.ServiceCategoryCreative, icon: "Video", basePrice: 5000000,
			options: []complexitySeed{
				{"Product Video (30-60s)", "product-video", "Short product showcase video", 5000000, 10000000},
				{"Brand Video (2-3 min)", "brand-video", "Brand storytelling video", 10000000, 20000000},
				{"Full Campaign (multiple videos)", "campaign", "Complete video campaign", 20000000, 50000000},
				{"Documentary/Long-form", "documentary", "Documentary or long-form content", 50000000, 100000000},
			},
		},
	}
}

func additionalServices() []additionalSeed {
	return []additionalSeed{
		{"Content Writing & Copywriting", "content", "Professional content writing and copywriting services", "FileText", 1500000, 5000000},
		{"SEO Optimization Setup", "seo", "Complete SEO optimization setup", "Search", 2000000, 8000000},
		{"Multilingual Support (per language)", "multilingual", "Multi-language support integration", "Globe", 3000000, 3000000},
		{"Ongoing Maintenance (per month)", "maintenance", "Monthly maintenance and support", "Headphones", 1200000, 1200000},
		{"Training & Documentation", "training", "Training sessions and documentation", "BookOpen", 2500000, 5000000},
		{"Priority Support (per month)", "priority-support", "Priority customer support", "Phone", 800000, 800000},
	}
}
