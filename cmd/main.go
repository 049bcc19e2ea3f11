package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
)

// HTML content for the test page
const htmlTestPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Catalog Service API Test Page</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-patch { color: #fca130; }
        .method-delete { color: #f93e3e; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>Catalog Service API Endpoints</h1>
    <p>Base URL: <code>http://localhost:8081</code></p>

    <h2>Productos API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/api/productos</code> - Create a product. JSON body: <code>{"nombre": "string", "precio": decimal, "categorias": ["string"]}</code></li>
        <li><span class="method method-get">GET</span> <code><a href="/api/productos">/api/productos</a></code> - List products. Query parameters: <code>q</code> (name search, accent-insensitive), <code>categoria</code>, <code>min_precio</code>, <code>max_precio</code>, <code>limit</code> (default 10, max 100), <code>offset</code> (default 0).</li>
        <li><span class="method method-get">GET</span> <code>/api/productos/{id}</code> - Retrieve a product by its UUID.</li>
        <li><span class="method method-put">PUT</span> <code>/api/productos/{id}</code> - Replace a product. Same body as create; the id is kept.</li>
        <li><span class="method method-patch">PATCH</span> <code>/api/productos/{id}</code> - Partially update a product. JSON body with any of <code>nombre</code>, <code>precio</code>, <code>categorias</code> (at least one).</li>
        <li><span class="method method-delete">DELETE</span> <code>/api/productos/{id}</code> - Delete a product by its UUID.</li>
    </ul>

    <h2>Categorias API</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/categorias">/api/categorias</a></code> - List the fixed set of allowed category tags.</li>
    </ul>

</body>
</html>
`

func serveTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlTestPageContent))
}

func main() {
	//  Configuration and Logging Setup
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Catalog Service...")

	gin.SetMode(cfg.GinMode)

	// --- Dependency Injection ---
	// Repository Layer
	productRepo := repository.NewMemoryProductRepository(logger)
	logger.Info("Repository initialized.")

	// Usecase Layer
	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, logger)
	categoryHandler := delivery.NewCategoryHandler(logger)
	logger.Info("Handlers initialized.")

	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	//Route Registration

	router.GET("/", serveTestPage)
	logger.Info("Registered HTML test page route at /")

	api := router.Group("/api")
	productHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	logger.Info("API Routes registered.")

	//  Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
