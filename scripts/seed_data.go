package main

import (
	"fmt"
	"log"
	"time"

	"github.com/bestconstruction/internal/config"
	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/form"
)

// 演示数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	createServices()
	createProjects()
	createBlogPosts()
	createAboutPage()

	fmt.Println("演示数据生成完成！")
}

// 创建服务项
func createServices() {
	var count int64
	db.DB.Model(&db.Service{}).Count(&count)
	if count > 0 {
		fmt.Println("服务已存在，跳过创建")
		return
	}

	services := []db.Service{
		{
			Title:       "General Construction",
			Description: "Full-service construction for residential and commercial buildings, from groundwork to handover.",
			Content:     "## General Construction\n\nWe manage every phase of your build with a single point of contact.",
			Category:    "construction",
			IsFeatured:  true,
			Icon:        "hard-hat",
		},
		{
			Title:       "Renovation & Remodeling",
			Description: "Kitchens, bathrooms and whole-home renovations that respect the original structure.",
			Content:     "## Renovation & Remodeling\n\nModernize your space without losing its character.",
			Category:    "renovation",
			IsFeatured:  true,
			Icon:        "paint-roller",
		},
		{
			Title:       "Project Management",
			Description: "Scheduling, budgeting and on-site supervision for builds of any size.",
			Content:     "## Project Management\n\nOne team accountable for timeline, budget and quality.",
			Category:    "consulting",
			IsFeatured:  false,
			Icon:        "clipboard-list",
		},
		{
			Title:       "Structural Engineering",
			Description: "Load calculations, retrofits and inspections by licensed engineers.",
			Content:     "## Structural Engineering\n\nSafety-first assessments for new builds and existing structures.",
			Category:    "engineering",
			IsFeatured:  false,
			Icon:        "ruler-combined",
		},
	}

	for i := range services {
		services[i].Slug = form.Slugify(services[i].Title)
		if err := db.DB.Create(&services[i]).Error; err != nil {
			log.Printf("创建服务失败: %v", err)
		}
	}

	fmt.Println("✅ 服务创建完成")
}

// 创建案例项目
func createProjects() {
	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count > 0 {
		fmt.Println("案例已存在，跳过创建")
		return
	}

	projects := []db.Project{
		{
			Title:       "Lakeside Villa",
			Description: "A 320 m2 family home with a timber frame and floor-to-ceiling lake views.",
			Category:    db.ProjectCategoryResidential,
			Location:    "Lake District",
			Year:        "2024",
			Images:      db.StringList{"/static/uploads/lakeside-1.jpg", "/static/uploads/lakeside-2.jpg"},
			IsFeatured:  true,
		},
		{
			Title:       "Riverside Office Park",
			Description: "Three low-rise office buildings around a shared courtyard, delivered in two phases.",
			Category:    db.ProjectCategoryCommercial,
			Location:    "City Centre",
			Year:        "2023",
			Images:      db.StringList{"/static/uploads/riverside-1.jpg"},
			IsFeatured:  true,
		},
		{
			Title:       "Heritage Townhouse Restoration",
			Description: "Facade restoration and full interior remodel of a protected 1910 townhouse.",
			Category:    db.ProjectCategoryRenovation,
			Location:    "Old Town",
			Year:        "2023",
			Images:      db.StringList{"/static/uploads/townhouse-1.jpg", "/static/uploads/townhouse-2.jpg"},
			IsFeatured:  false,
		},
		{
			Title:       "Cold Storage Facility",
			Description: "A 5,000 m2 insulated warehouse with automated loading docks.",
			Category:    db.ProjectCategoryIndustrial,
			Location:    "Logistics Park",
			Year:        "2022",
			Images:      db.StringList{"/static/uploads/coldstore-1.jpg"},
			IsFeatured:  false,
		},
	}

	for i := range projects {
		projects[i].Slug = form.Slugify(projects[i].Title)
		if err := db.DB.Create(&projects[i]).Error; err != nil {
			log.Printf("创建案例失败: %v", err)
		}
	}

	fmt.Println("✅ 案例创建完成")
}

// 创建博客文章
func createBlogPosts() {
	var count int64
	db.DB.Model(&db.BlogPost{}).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	posts := []struct {
		title   string
		excerpt string
		content string
		tags    db.StringList
		author  string
		draft   bool
	}{
		{
			title:   "How to Budget a Home Renovation",
			excerpt: "A practical walkthrough of renovation costs, contingencies and where owners overspend.",
			content: "## How to Budget a Home Renovation\n\nStart with the structure, finish with the finishes.",
			tags:    db.StringList{"renovation", "budget"},
			author:  "Site Team",
		},
		{
			title:   "Choosing the Right Foundation Type",
			excerpt: "Slab, crawl space or basement? Soil conditions decide more than preference does.",
			content: "## Choosing the Right Foundation Type\n\nSoil reports come before drawings.",
			tags:    db.StringList{"engineering", "howto"},
			author:  "Site Team",
		},
		{
			title:   "Winter Concrete Pours",
			excerpt: "Curing concrete below freezing takes planning. Here is our checklist.",
			content: "## Winter Concrete Pours\n\nHeated enclosures and accelerators keep schedules intact.",
			tags:    db.StringList{"howto", "safety"},
			author:  "Site Team",
		},
		{
			title:   "Upcoming: Passive House Standards",
			excerpt: "Draft notes on certification requirements we are preparing for.",
			content: "Draft in progress.",
			tags:    db.StringList{"engineering"},
			author:  "Site Team",
			draft:   true,
		},
	}

	for idx, data := range posts {
		post := db.BlogPost{
			Title:   data.title,
			Slug:    form.Slugify(data.title),
			Content: data.content,
			Excerpt: data.excerpt,
			Tags:    data.tags,
			Author:  data.author,
		}
		if !data.draft {
			publishedAt := time.Now().Add(-time.Duration(idx) * 72 * time.Hour)
			post.PublishedAt = &publishedAt
		}
		if err := db.DB.Create(&post).Error; err != nil {
			log.Printf("创建文章失败: %v", err)
		}
	}

	fmt.Println("✅ 文章创建完成")
}

// 创建关于页
func createAboutPage() {
	var count int64
	db.DB.Model(&db.Page{}).Where("slug = ?", "about").Count(&count)
	if count > 0 {
		fmt.Println("关于页已存在，跳过创建")
		return
	}

	page := db.Page{
		Slug:    "about",
		Title:   "About BestConstruction",
		Content: "## Building since 1998\n\n- Over 400 completed projects\n- Licensed and insured crews\n- In-house engineering and project management\n\nWe build homes, offices and industrial facilities across the region.",
	}

	if err := db.DB.Create(&page).Error; err != nil {
		log.Printf("创建关于页失败: %v", err)
		return
	}

	fmt.Println("✅ 关于页创建完成")
}
