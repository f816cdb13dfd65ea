package handler

import (
	"fmt"
	"html/template"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/revalidate"
)

// testTemplates covers every template name the handlers render, so HTML
// paths work without the web/template directory.
var testTemplateNames = []string{
	"home.html", "services.html", "service_detail.html",
	"portfolio.html", "portfolio_detail.html",
	"blog.html", "blog_detail.html",
	"about.html", "contact.html",
	"dashboard.html", "messages.html", "about_edit.html",
	"blog_manage.html", "blog_form.html",
	"portfolio_manage.html", "portfolio_form.html",
	"services_manage.html", "service_form.html",
}

// setupAPITest wires an API over an isolated in-memory database and a gin
// engine with session middleware and stub templates.
func setupAPITest(t *testing.T) (*gin.Engine, *API, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, gdb.AutoMigrate(
		&db.Service{}, &db.Project{}, &db.BlogPost{}, &db.Message{}, &db.Page{},
	))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	api := NewAPI(gdb, &revalidate.Notifier{}, t.TempDir(), "/static/uploads")

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	tmpl := template.New("root")
	for _, name := range testTemplateNames {
		template.Must(tmpl.New(name).Parse(`{{.title}}`))
	}
	r.SetHTMLTemplate(tmpl)

	return r, api, gdb
}
