package handler

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bestconstruction/internal/repository"
	"github.com/bestconstruction/internal/revalidate"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	services  *repository.ServiceRepository
	projects  *repository.ProjectRepository
	posts     *repository.BlogPostRepository
	messages  *repository.MessageRepository
	pages     *repository.PageRepository
	routes    *revalidate.Notifier
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared repositories.
func NewAPI(gdb *gorm.DB, routes *revalidate.Notifier, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		services:  repository.NewServiceRepository(gdb, routes),
		projects:  repository.NewProjectRepository(gdb, routes),
		posts:     repository.NewBlogPostRepository(gdb, routes),
		messages:  repository.NewMessageRepository(gdb),
		pages:     repository.NewPageRepository(gdb, routes),
		routes:    routes,
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// Routes exposes the revalidation notifier so the router can attach
// listeners for the rendering layer.
func (a *API) Routes() *revalidate.Notifier {
	return a.routes
}

const flashKey = "flash"

// setFlash stores a one-shot notice shown after the next redirect.
func setFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set(flashKey, message)
	_ = session.Save()
}

func popFlash(c *gin.Context) string {
	session := sessions.Default(c)
	value := session.Get(flashKey)
	if value == nil {
		return ""
	}
	session.Delete(flashKey)
	_ = session.Save()
	if message, ok := value.(string); ok {
		return message
	}
	return ""
}

// renderHTML 在渲染模板时附加站点级公共数据与一次性提示。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{
		"siteName": "BestConstruction",
		"year":     time.Now().Year(),
	}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["flash"]; !exists {
		if flash := popFlash(c); flash != "" {
			payload["flash"] = flash
		}
	}

	c.HTML(status, template, payload)
}
