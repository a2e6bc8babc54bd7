package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	"github.com/T3nda22/DungogWebsite2c/internal/cache"
	"github.com/T3nda22/DungogWebsite2c/internal/config"
	"github.com/T3nda22/DungogWebsite2c/internal/handlers"
	infraRepo "github.com/T3nda22/DungogWebsite2c/internal/infra/repository"
	"github.com/T3nda22/DungogWebsite2c/internal/middleware"
	ucRental "github.com/T3nda22/DungogWebsite2c/internal/usecase/rental"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	rentalRepo := infraRepo.NewRentalGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availCache := cache.NewAvailability(rdb)

	// ======================================================
	// USE CASES — BOOKING ENGINE
	// ======================================================
	requestRentalUC := ucRental.NewRequestRental(
		rentalRepo,
		auditDispatcher,
		availCache,
	)

	confirmPaymentUC := ucRental.NewConfirmPayment(
		rentalRepo,
		auditDispatcher,
	)

	cancelRentalUC := ucRental.NewCancelRental(
		rentalRepo,
		auditDispatcher,
		availCache,
	)

	updateStatusUC := ucRental.NewOwnerUpdateStatus(
		rentalRepo,
		auditDispatcher,
		cancelRentalUC,
	)

	checkAvailabilityUC := ucRental.NewCheckAvailability(rentalRepo)
	listAvailableUC := ucRental.NewListAvailableDates(rentalRepo)
	countAvailableUC := ucRental.NewCountAvailable(rentalRepo, availCache)

	blockDatesUC := ucRental.NewBlockDates(
		rentalRepo,
		auditDispatcher,
		availCache,
	)

	unblockDatesUC := ucRental.NewUnblockDates(
		rentalRepo,
		auditDispatcher,
		availCache,
	)

	clearManualBlocksUC := ucRental.NewClearManualBlocks(
		rentalRepo,
		auditDispatcher,
		availCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	itemHandler := handlers.NewItemHandler(db)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	rentalHandler := handlers.NewRentalHandler(
		rentalRepo,
		requestRentalUC,
		confirmPaymentUC,
		cancelRentalUC,
		updateStatusUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		checkAvailabilityUC,
		listAvailableUC,
		countAvailableUC,
		blockDatesUC,
		unblockDatesUC,
		clearManualBlocksUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/items", itemHandler.Browse)
			publicAPI.GET("/items/:id/availability", calendarHandler.CheckRange)
			publicAPI.GET("/items/:id/available-dates", calendarHandler.AvailableDates)
			publicAPI.GET("/items/:id/available-count", calendarHandler.AvailableCount)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// items (owner)
			secured.GET("/me/items", itemHandler.ListMine)
			secured.POST("/me/items", itemHandler.Create)
			secured.PATCH("/me/items/:id", itemHandler.Update)

			// owner calendar blocks
			secured.POST("/me/items/:id/blocks", calendarHandler.BlockDates)
			secured.DELETE("/me/items/:id/blocks", calendarHandler.UnblockDates)
			secured.DELETE("/me/items/:id/blocks/all", calendarHandler.ClearManualBlocks)

			// ------------------------------
			// RENTALS
			// ------------------------------
			secured.POST("/rentals", rentalHandler.Request)
			secured.GET("/me/rentals", rentalHandler.ListMine)
			secured.GET("/me/incoming-rentals", rentalHandler.ListIncoming)
			secured.POST("/rentals/:id/payment", rentalHandler.ConfirmPayment)
			secured.PATCH("/rentals/:id/cancel", rentalHandler.Cancel)
			secured.PATCH("/rentals/:id/status", rentalHandler.UpdateStatus)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.GET("/admin/items/pending", adminHandler.ListPendingItems)
			secured.PATCH("/admin/items/:id/approve", adminHandler.ApproveItem)
			secured.PATCH("/admin/items/:id/reject", adminHandler.RejectItem)
			secured.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
