package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arogya-ai/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	analysisH *AnalysisHandler,
	wellnessH *WellnessHandler,
	clinicH *ClinicHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := JWTAuthMiddleware(jwtSvc)

	r.GET("/health", analysisH.Health)

	r.POST("/mood/analyze", OptionalJWTAuthMiddleware(jwtSvc), analysisH.AnalyzeMood)
	r.GET("/mood/history", auth, wellnessH.MoodHistory)
	r.POST("/symptoms/analyze", analysisH.AnalyzeSymptoms)
	r.POST("/diet/plan", analysisH.DietPlan)
	r.POST("/companion/message", analysisH.CompanionMessage)

	r.POST("/session", userH.StartSession)
	me := r.Group("/me", auth)
	me.GET("", userH.Me)
	me.DELETE("", userH.SignOut)

	r.GET("/journal/prompt", wellnessH.JournalPrompt)
	journal := r.Group("/journal", auth)
	journal.GET("", wellnessH.ListJournal)
	journal.POST("", wellnessH.AddJournalEntry)
	journal.DELETE("/:id", wellnessH.DeleteJournalEntry)

	r.GET("/affirmations/suggest", wellnessH.SuggestAffirmation)
	favorites := r.Group("/favorites", auth)
	favorites.GET("", wellnessH.Favorites)
	favorites.POST("", wellnessH.AddFavorite)
	favorites.DELETE("", wellnessH.RemoveFavorite)

	theme := r.Group("/theme", auth)
	theme.GET("", wellnessH.Theme)
	theme.PUT("", wellnessH.SetTheme)

	reports := r.Group("/reports")
	reports.POST("/analyze", clinicH.AnalyzeReport)
	reports.GET("/diseases", clinicH.Diseases)
	reports.GET("/knowledge", clinicH.Knowledge)
	r.POST("/prescriptions/analyze", clinicH.AnalyzePrescription)

	r.GET("/doctors", clinicH.Doctors)
	r.GET("/doctors/:id", clinicH.Doctor)

	r.GET("/appointments/slots", clinicH.AppointmentSlots)
	appointments := r.Group("/appointments", auth)
	appointments.GET("", clinicH.ListAppointments)
	appointments.POST("", clinicH.BookAppointment)
	appointments.POST("/:id/cancel", clinicH.CancelAppointment)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
