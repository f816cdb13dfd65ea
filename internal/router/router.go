package router

import (
	"html/template"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/config"
	"github.com/bestconstruction/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	// 配置会话中间件，用于表单提交后的一次性提示
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("bestconstruction_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(templateFuncMap())
	r.LoadHTMLGlob("web/template/**/*.html")

	// 静态文件服务
	r.Static("/static", "./web/static")

	// 渲染层通过订阅获知哪些公开路由已失效
	api.Routes().Subscribe(func(paths []string) {
		log.Info().Strs("paths", paths).Msg("routes invalidated")
	})

	registerRoutes(r, api)
	return r
}

func registerRoutes(r *gin.Engine, api *handler.API) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 前台路由
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/services", api.ShowServices)
	r.GET("/services/:slug", api.ShowServiceDetail)
	r.GET("/portfolio", api.ShowPortfolio)
	r.GET("/portfolio/:slug", api.ShowPortfolioDetail)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:slug", api.ShowBlogDetail)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("", api.ShowDashboard)
		admin.GET("/blog", api.ShowBlogList)
		admin.GET("/blog/new", api.ShowBlogNew)
		admin.POST("/blog/new", api.CreateBlogPost)
		admin.GET("/blog/:id/edit", api.ShowBlogEdit)
		admin.POST("/blog/:id/edit", api.UpdateBlogPost)

		admin.GET("/portfolio", api.ShowPortfolioList)
		admin.GET("/portfolio/new", api.ShowPortfolioNew)
		admin.POST("/portfolio/new", api.CreatePortfolioProject)
		admin.GET("/portfolio/:id/edit", api.ShowPortfolioEdit)
		admin.POST("/portfolio/:id/edit", api.UpdatePortfolioProject)

		admin.GET("/services", api.ShowServiceList)
		admin.GET("/services/new", api.ShowServiceNew)
		admin.POST("/services/new", api.CreateService)
		admin.GET("/services/:id/edit", api.ShowServiceEdit)
		admin.POST("/services/:id/edit", api.UpdateService)

		admin.GET("/messages", api.ShowMessages)
		admin.GET("/about", api.ShowAboutEditor)
		admin.POST("/about", api.SaveAboutPage)

		// API 路由
		apiGroup := admin.Group("/api")
		{
			apiGroup.DELETE("/blog/:id", api.DeleteBlogPost)
			apiGroup.DELETE("/portfolio/:id", api.DeletePortfolioProject)
			apiGroup.DELETE("/services/:id", api.DeleteService)
			apiGroup.PUT("/messages/:id/read", api.MarkMessageRead)
			apiGroup.GET("/slug", api.PreviewSlug)
			apiGroup.POST("/upload", api.UploadImage)
		}
	}
}

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatDatePtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
	}
}

// requestLogger 以结构化日志记录每个请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
