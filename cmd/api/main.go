package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/huellitas-app/petcare-api/internal/config"
	dbpkg "github.com/huellitas-app/petcare-api/internal/db"
	"github.com/huellitas-app/petcare-api/internal/middleware"
	"github.com/huellitas-app/petcare-api/internal/routes"
)

func main() {

	// .env es opcional; en producción todo viene del entorno
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
