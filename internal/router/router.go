package router

import (
	"time"

	"amaru/internal/config"
	"amaru/internal/handler"
	"amaru/internal/infra"
	"amaru/internal/middleware"
	"amaru/internal/repository"
	"amaru/internal/service"
	"amaru/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB; Service → Notificador → Redis
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	notificador worker.Notificador,
	smtpCB *infra.CircuitBreaker,
	reg *prometheus.Registry,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	metrics := middleware.NewMetrics(reg)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(metrics.Handler())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	subcategoriaRepo := repository.NewSubcategoriaRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	tallerRepo := repository.NewTallerRepository(db)
	profesorRepo := repository.NewProfesorRepository(db)
	actividadRepo := repository.NewActividadRepository(db)
	premioRepo := repository.NewPremioRepository(db)
	festivalRepo := repository.NewFestivalRepository(db)
	inscripcionRepo := repository.NewInscripcionRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	sinPasswordRepo := repository.NewUsuarioSinPasswordRepository(db)
	rolRepo := repository.NewRolRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sinPasswordRepo, rolRepo, cfg)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, subcategoriaRepo)
	subcategoriaSvc := service.NewSubcategoriaService(subcategoriaRepo, categoriaRepo)
	servicioSvc := service.NewServicioService(servicioRepo, categoriaRepo, subcategoriaRepo)
	tallerSvc := service.NewTallerService(tallerRepo, categoriaRepo, subcategoriaRepo, profesorRepo)
	profesorSvc := service.NewProfesorService(profesorRepo)
	actividadSvc := service.NewActividadService(actividadRepo)
	premioSvc := service.NewPremioService(premioRepo)
	festivalSvc := service.NewFestivalService(festivalRepo, actividadRepo)
	inscripcionSvc := service.NewInscripcionService(inscripcionRepo, sinPasswordRepo, notificador, cfg.NumeroPago)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	subcategoriasH := handler.NewSubcategoriasHandler(subcategoriaSvc)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	talleresH := handler.NewTalleresHandler(tallerSvc)
	profesoresH := handler.NewProfesoresHandler(profesorSvc)
	actividadesH := handler.NewActividadesHandler(actividadSvc)
	premiosH := handler.NewPremiosHandler(premioSvc)
	festivalesH := handler.NewFestivalesHandler(festivalSvc)
	inscripcionesH := handler.NewInscripcionesHandler(inscripcionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, smtpCB))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireRole("admin")

	v1 := r.Group("/v1")

	// One budget per IP across every credential endpoint.
	loginLimiter := middleware.LoginRateLimiter()

	auth := v1.Group("/auth")
	{
		auth.POST("/login", loginLimiter, authH.Login)
		auth.POST("/register-sin-password", loginLimiter, authH.RegistrarSinPassword)
		auth.POST("/login-sin-password", loginLimiter, authH.LoginSinPassword)

		usuarios := auth.Group("/usuarios-sin-password", jwtMW, admin)
		usuarios.GET("", authH.ListarUsuarios)
		usuarios.GET("/activos", authH.ListarUsuariosActivos)
		usuarios.GET("/:id", authH.ObtenerUsuario)
	}

	// Categorías: public reads, admin writes
	cat := v1.Group("/categorias")
	{
		cat.GET("", categoriasH.Listar)
		cat.GET("/activas", categoriasH.ListarActivas)
		cat.GET("/estado/:estado", categoriasH.ListarPorEstado)
		cat.GET("/tipo/:tipo", categoriasH.ListarPorTipo)
		cat.GET("/rango-fechas", categoriasH.ListarPorRangoFechas)
		cat.GET("/:id", categoriasH.ObtenerPorID)

		w := cat.Group("", jwtMW, admin)
		w.POST("", categoriasH.Crear)
		w.PATCH("/:id", categoriasH.Actualizar)
		w.PATCH("/:id/activar", categoriasH.Activar)
		w.PATCH("/:id/desactivar", categoriasH.Desactivar)
		w.DELETE("/:id", categoriasH.Eliminar)
	}

	sub := v1.Group("/subcategorias")
	{
		sub.GET("", subcategoriasH.Listar)
		sub.GET("/categoria/:id", subcategoriasH.ListarPorCategoria)
		sub.GET("/:id", subcategoriasH.ObtenerPorID)

		w := sub.Group("", jwtMW, admin)
		w.POST("", subcategoriasH.Crear)
		w.PATCH("/:id", subcategoriasH.Actualizar)
		w.PATCH("/:id/estado", subcategoriasH.CambiarEstado)
		w.PATCH("/categoria/:id/activar", subcategoriasH.ActivarPorCategoria)
		w.PATCH("/categoria/:id/desactivar", subcategoriasH.DesactivarPorCategoria)
		w.DELETE("/:id", subcategoriasH.Eliminar)
	}

	serv := v1.Group("/servicios")
	{
		serv.GET("", serviciosH.Listar)
		serv.GET("/activos", serviciosH.ListarActivos)
		serv.GET("/filtrar", serviciosH.Filtrar)
		serv.GET("/categoria/:id", serviciosH.ListarPorCategoria)
		serv.GET("/subcategoria/:id", serviciosH.ListarPorSubcategoria)
		serv.GET("/:id", serviciosH.ObtenerPorID)

		w := serv.Group("", jwtMW, admin)
		w.POST("", serviciosH.Crear)
		w.PATCH("/:id", serviciosH.Actualizar)
		w.PATCH("/:id/estado", serviciosH.CambiarEstado)
		w.DELETE("/:id", serviciosH.Eliminar)
	}

	tall := v1.Group("/talleres")
	{
		tall.GET("", talleresH.Listar)
		tall.GET("/activos", talleresH.ListarActivos)
		tall.GET("/proximos", talleresH.ListarProximos)
		tall.GET("/filtrar", talleresH.Filtrar)
		tall.GET("/subcategoria/:id", talleresH.ListarPorSubcategoria)
		tall.GET("/profesor/:id", talleresH.ListarPorProfesor)
		tall.GET("/:id", talleresH.ObtenerPorID)

		w := tall.Group("", jwtMW, admin)
		w.POST("", talleresH.Crear)
		w.PATCH("/:id", talleresH.Actualizar)
		w.PATCH("/:id/estado", talleresH.CambiarEstado)
		w.PATCH("/:id/cupo", talleresH.ActualizarCupo)
		w.DELETE("/:id", talleresH.Eliminar)
	}

	prof := v1.Group("/profesores")
	{
		prof.GET("", profesoresH.Listar)
		prof.GET("/:id", profesoresH.ObtenerPorID)
		w := prof.Group("", jwtMW, admin)
		w.POST("", profesoresH.Crear)
		w.PATCH("/:id", profesoresH.Actualizar)
		w.DELETE("/:id", profesoresH.Eliminar)
	}

	act := v1.Group("/actividades")
	{
		act.GET("", actividadesH.Listar)
		act.GET("/:id", actividadesH.ObtenerPorID)
		w := act.Group("", jwtMW, admin)
		w.POST("", actividadesH.Crear)
		w.PATCH("/:id", actividadesH.Actualizar)
		w.DELETE("/:id", actividadesH.Eliminar)
	}

	prem := v1.Group("/premios")
	{
		prem.GET("", premiosH.Listar)
		prem.GET("/:id", premiosH.ObtenerPorID)
		w := prem.Group("", jwtMW, admin)
		w.POST("", premiosH.Crear)
		w.PATCH("/:id", premiosH.Actualizar)
		w.DELETE("/:id", premiosH.Eliminar)
	}

	fest := v1.Group("/festivales")
	{
		fest.GET("", festivalesH.Listar)
		fest.GET("/activos", festivalesH.ListarActivos)
		fest.GET("/proximos", festivalesH.ListarProximos)
		fest.GET("/tipo/:tipo", festivalesH.ListarPorTipo)
		fest.GET("/actividad/:id", festivalesH.ListarPorActividad)
		fest.GET("/:id", festivalesH.ObtenerPorID)

		w := fest.Group("", jwtMW, admin)
		w.POST("", festivalesH.Crear)
		w.PATCH("/:id", festivalesH.Actualizar)
		w.PATCH("/:id/estado", festivalesH.CambiarEstado)
		w.DELETE("/:id", festivalesH.Eliminar)
	}

	// Inscripciones: any authenticated user registers; the back office manages them
	ins := v1.Group("/inscripciones", jwtMW)
	{
		ins.POST("", inscripcionesH.Crear)

		w := ins.Group("", admin)
		w.GET("", inscripcionesH.Listar)
		w.GET("/usuario/:id", inscripcionesH.ListarPorUsuario)
		w.GET("/estado/:estado", inscripcionesH.ListarPorEstado)
		w.GET("/estadisticas", inscripcionesH.Estadisticas)
		w.GET("/:id", inscripcionesH.ObtenerPorID)
		w.GET("/:id/constancia", inscripcionesH.Constancia)
		w.PATCH("/:id", inscripcionesH.Actualizar)
		w.PATCH("/:id/estado", inscripcionesH.CambiarEstado)
		w.DELETE("/:id", inscripcionesH.Eliminar)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
