package server

import (
	"smartcampus-server/confs"
	"smartcampus-server/db"
	"smartcampus-server/handlers"
	httpHandler "smartcampus-server/handlers/http"
	"smartcampus-server/repositories"
	"smartcampus-server/services"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	s.Setup()

	if err := s.app.Run("0.0.0.0:" + confs.Port()); err != nil {
		panic(err)
	}
}

// Setup wires repositories, use cases, the broadcast hub and all
// routes onto the gin engine. Split from Start so tests can drive the
// engine without listening.
func (s *Server) Setup() *gin.Engine {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	buildingRepo := repositories.NewBuildingPgRepository(s.db)
	sensorRepo := repositories.NewSensorPgRepository(s.db)
	energyRepo := repositories.NewEnergyPgRepository(s.db)
	alertRepo := repositories.NewAlertPgRepository(s.db)

	// Use cases
	sensorUseCase := usecases.NewSensorUseCase(sensorRepo, confs.SensorAutoCreate())
	buildingUseCase := usecases.NewBuildingUseCase(buildingRepo)
	energyUseCase := usecases.NewEnergyUseCase(energyRepo)
	alertUseCase := usecases.NewAlertUseCase(alertRepo)

	// Broadcast hub, roll-up service and handlers
	hub := ws.NewHub()
	aggregator := services.NewEnergyAggregator(energyUseCase, hub)
	aggregator.Start()
	wsHandler := handlers.NewWSHandler(hub, sensorUseCase, aggregator)
	aggregateHandler := handlers.NewAggregateHandler(aggregator)

	secret := confs.JWTSecret()
	authHandler := httpHandler.NewAuthHandler(userRepo, secret)
	sensorHandler := httpHandler.NewSensorHandler(sensorUseCase, hub, confs.AdminEmail())
	buildingHandler := httpHandler.NewBuildingHandler(buildingUseCase)
	energyHandler := httpHandler.NewEnergyHandler(energyUseCase, hub)
	alertHandler := httpHandler.NewAlertHandler(alertUseCase, hub)

	api := s.app.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", httpHandler.AuthRequired(secret), authHandler.Me)
		}

		buildings := api.Group("/buildings")
		{
			buildings.GET("", buildingHandler.GetAllBuildings)
			buildings.POST("", httpHandler.AuthRequired(secret), buildingHandler.CreateBuilding)
		}

		sensors := api.Group("/sensors")
		{
			sensors.GET("", sensorHandler.GetAllSensors)
			sensors.POST("", httpHandler.AuthRequired(secret), sensorHandler.CreateSensor)
			// PUT stays reachable without a token: a status-only body
			// is the public toggle.
			sensors.PUT("/:id", httpHandler.OptionalAuth(secret), sensorHandler.UpdateSensor)
		}

		energy := api.Group("/energy")
		{
			energy.GET("", energyHandler.ListReadings)
			energy.POST("", energyHandler.CreateReading)
			energy.GET("/stats", energyHandler.Stats)
			energy.GET("/building/:building", energyHandler.ListByBuilding)
			energy.DELETE("/:id", energyHandler.DeleteReading)
			energy.POST("/process", aggregateHandler.ProcessNow)
			energy.GET("/cache/stats", aggregateHandler.GetStats)
		}

		alerts := api.Group("/alerts")
		{
			alerts.GET("", alertHandler.GetActiveAlerts)
			alerts.POST("", alertHandler.CreateAlert)
			alerts.PUT("/:id", httpHandler.AuthRequired(secret), alertHandler.UpdateAlert)
		}

		api.GET("/clients/connected", wsHandler.GetConnectedClients)
	}

	s.app.GET("/ws", wsHandler.HandleWS)

	return s.app
}
