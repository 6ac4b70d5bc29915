package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	notifUsecases "helpdesk/internal/application/notification/usecases"
	orgUsecases "helpdesk/internal/application/organization/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/pubsub"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

// Router owns the gin engine and the fully wired handler graph.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	authHandler         *handlers.AuthHandler
	ticketHandler       *handlers.TicketHandler
	dashboardHandler    *handlers.DashboardHandler
	notificationHandler *handlers.NotificationHandler
	organizationHandler *handlers.OrganizationHandler
	userHandler         *handlers.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	log                 logger.Interface
}

// NewRouter wires repositories, adapters, use cases and handlers. The
// event dispatcher must already be started; the assignment notifier is
// subscribed here.
func NewRouter(db *gorm.DB, dispatcher *events.InMemoryEventDispatcher, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db, repository.NewSequenceNumberGenerator(db))
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	fileStore := storage.NewLocalDiskStore(&cfg.Storage)

	var mailer notifUsecases.Mailer
	if cfg.Email.Enabled {
		mailer = email.NewSMTPAssignmentMailer(&cfg.Email)
	}

	var pusher notifUsecases.Pusher
	if cfg.Redis.Enabled {
		pusher = pubsub.NewRedisNotificationBus(pubsub.NewRedisClient(&cfg.Redis), log)
	}

	notifier := notifUsecases.NewAssignmentNotifier(notificationRepo, ticketRepo, userRepo, mailer, pusher, log)
	if err := dispatcher.Subscribe(ticket.TicketAssignedEventType, notifier); err != nil {
		return nil, err
	}

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, userRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	changeStatusUC := ticketUsecases.NewChangeTicketStatusUseCase(ticketRepo, dispatcher, log)
	searchTicketsUC := ticketUsecases.NewSearchTicketsUseCase(ticketRepo, userRepo, log)
	dashboardStatsUC := ticketUsecases.NewGetDashboardStatsUseCase(ticketRepo, log)
	uploadAttachmentsUC := ticketUsecases.NewUploadAttachmentsUseCase(ticketRepo, fileStore, log)

	listNotificationsUC := notifUsecases.NewListNotificationsUseCase(notificationRepo, log)
	unreadCountUC := notifUsecases.NewGetUnreadCountUseCase(notificationRepo, log)
	acknowledgeUC := notifUsecases.NewAcknowledgeNotificationUseCase(notificationRepo, ticketRepo, dispatcher, log)
	markAllReadUC := notifUsecases.NewMarkAllReadUseCase(notificationRepo, log)

	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)
	selectOrgUC := userUsecases.NewSelectOrganizationUseCase(userRepo, orgRepo, membershipRepo, jwtSvc, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, log)

	listOrgsUC := orgUsecases.NewListUserOrganizationsUseCase(orgRepo, membershipRepo, log)
	getOrgUC := orgUsecases.NewGetOrganizationUseCase(orgRepo, log)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		authHandler:         handlers.NewAuthHandler(loginUC, selectOrgUC, listOrgsUC, log),
		ticketHandler:       handlers.NewTicketHandler(createTicketUC, getTicketUC, updateTicketUC, assignTicketUC, changeStatusUC, searchTicketsUC, uploadAttachmentsUC, log),
		dashboardHandler:    handlers.NewDashboardHandler(dashboardStatsUC, log),
		notificationHandler: handlers.NewNotificationHandler(listNotificationsUC, unreadCountUC, acknowledgeUC, markAllReadUC, log),
		organizationHandler: handlers.NewOrganizationHandler(getOrgUC, log),
		userHandler:         handlers.NewUserHandler(listUsersUC, log),
		authMiddleware:      middleware.NewAuthMiddleware(jwtSvc, log),
		log:                 log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.userHandler.HealthCheck)

	// Uploaded attachments are served straight from local disk.
	r.engine.Static("/uploads", r.cfg.Storage.Root)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:    r.ticketHandler,
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupOrganizationRoutes(r.engine, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.organizationHandler,
		UserHandler:         r.userHandler,
		AuthMiddleware:      r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
