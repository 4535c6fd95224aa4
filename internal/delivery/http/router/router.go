// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vendir/internal/delivery/http/middleware"
	"vendir/internal/delivery/http/router/handler"
	"vendir/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the HTTP surface exposes, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	DirectoryHandler *handler.DirectoryHandler
	VendorHandler    *handler.VendorHandler
	GalleryHandler   *handler.GalleryHandler
	InquiryHandler   *handler.InquiryHandler
	ReviewHandler    *handler.ReviewHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	// Public directory surface
	e.GET("/vendors", r.params.DirectoryHandler.ListVendors)
	e.GET("/vendors/:identifier", r.params.DirectoryHandler.GetVendor)
	e.POST("/vendors/:id/inquiries", r.params.InquiryHandler.SubmitInquiry, auth.OptionalAuthenticate)
	e.POST("/vendors/:id/reviews", r.params.ReviewHandler.SubmitReview, auth.Authenticate)

	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("", r.params.DirectoryHandler.GetCatalog)
		catalogGroup.GET("/categories", r.params.DirectoryHandler.GetCategories)
		catalogGroup.GET("/cities", r.params.DirectoryHandler.GetCities)
		catalogGroup.GET("/amenities", r.params.DirectoryHandler.GetAmenities)
		catalogGroup.GET("/occasions", r.params.DirectoryHandler.GetOccasions)
	}

	// Session lifecycle
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	// Owner-side vendor surface
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(auth.Authenticate)
	{
		vendorGroup.POST("/become", r.params.AuthHandler.BecomeVendor)
		vendorGroup.GET("/profile", r.params.VendorHandler.GetProfile)
		vendorGroup.PUT("/profile/basic-info", r.params.VendorHandler.UpdateBasicInfo)
		vendorGroup.PUT("/profile/category", r.params.VendorHandler.UpdateCategory)
		vendorGroup.PUT("/profile/location", r.params.VendorHandler.UpdateLocation)
		vendorGroup.PUT("/profile/amenities", r.params.VendorHandler.UpdateAmenities)
		vendorGroup.PUT("/profile/occasions", r.params.VendorHandler.UpdateOccasions)
		vendorGroup.PUT("/profile/social-links", r.params.VendorHandler.UpdateSocialLinks)
		vendorGroup.PUT("/profile/opening-hours", r.params.VendorHandler.UpdateOpeningHours)
		vendorGroup.GET("/qrcode", r.params.VendorHandler.ProfileQR)
		vendorGroup.GET("/analytics", r.params.VendorHandler.GetAnalytics)

		vendorGroup.GET("/gallery", r.params.GalleryHandler.ListImages)
		vendorGroup.POST("/gallery", r.params.GalleryHandler.UploadImage)
		vendorGroup.DELETE("/gallery/:id", r.params.GalleryHandler.DeleteImage)
		vendorGroup.PUT("/gallery/:id/cover", r.params.GalleryHandler.SetCoverImage)

		vendorGroup.GET("/inquiries", r.params.InquiryHandler.ListInquiries)
		vendorGroup.PUT("/inquiries/:id/status", r.params.InquiryHandler.UpdateStatus)
	}

	// Moderation console
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.DELETE("/users/:id", r.params.AdminHandler.DeleteUser)
		adminGroup.PUT("/users/:id/role", r.params.AdminHandler.UpdateUserRole)
		adminGroup.GET("/vendors", r.params.AdminHandler.ListVendors)
		adminGroup.PUT("/vendors/:id/verification", r.params.AdminHandler.SetVendorVerification)
		adminGroup.GET("/reviews", r.params.AdminHandler.ListReviews)
		adminGroup.GET("/inquiries", r.params.AdminHandler.ListInquiries)
		adminGroup.DELETE("/reviews/:id", r.params.AdminHandler.DeleteReview)
	}
}
