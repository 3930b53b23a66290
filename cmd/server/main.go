package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"factshub/internal/db"
	"factshub/internal/middleware"
	"factshub/internal/router"
	"factshub/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("factshub_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadIdentity())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("FactsHub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"markdown": func(s string) template.HTML {
			return utils.RenderMarkdown(s)
		},
		"date": func(t interface{}) string {
			switch v := t.(type) {
			case time.Time:
				return v.Format("2006-01-02 15:04")
			case *time.Time:
				if v == nil {
					return ""
				}
				return v.Format("2006-01-02 15:04")
			}
			return ""
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			case *time.Time:
				if v == nil {
					return ""
				}
				timeVal = *v
			default:
				return ""
			}

			seconds := int(time.Since(timeVal).Seconds())
			if seconds < 60 {
				return fmt.Sprintf("%ds ago", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%dm ago", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%dh ago", seconds/3600)
			}
			return fmt.Sprintf("%dd ago", seconds/86400)
		},
	}

	// Manual registration to ensure keys match handler expectation
	r.AddFromFilesFuncs("index.html", funcMap, assemble(templatesDir+"/views/index.html")...)
	r.AddFromFilesFuncs("archive.html", funcMap, assemble(templatesDir+"/views/archive.html")...)
	r.AddFromFilesFuncs("fact/submit.html", funcMap, assemble(templatesDir+"/views/fact/submit.html")...)
	r.AddFromFilesFuncs("admin/queue.html", funcMap, assemble(templatesDir+"/views/admin/queue.html")...)
	r.AddFromFilesFuncs("user/profile.html", funcMap, assemble(templatesDir+"/views/user/profile.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
