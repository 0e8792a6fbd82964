package taxonomy

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTaxonomyRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTaxonomyRepository(db)
	controller := NewTaxonomyController(repo, appConfig)

	publicCategories := router.Group("/category")
	{
		publicCategories.GET("", controller.GetAllCategories)
		publicCategories.GET("/:category_id", controller.GetCategoryByID)
	}

	publicTypes := router.Group("/eventtype")
	{
		publicTypes.GET("", controller.GetAllTypes)
		publicTypes.GET("/:type_id", controller.GetTypeByID)
	}

	adminCategories := router.Group("/category")
	adminCategories.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		adminCategories.POST("", controller.CreateCategory)
		adminCategories.PUT("/:category_id", controller.UpdateCategory)
		adminCategories.POST("/:category_id/cover", controller.UploadCategoryCover)
		adminCategories.DELETE("/:category_id", controller.DeleteCategory)
	}

	adminTypes := router.Group("/eventtype")
	adminTypes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		adminTypes.POST("", controller.CreateType)
		adminTypes.PUT("/:type_id", controller.UpdateType)
		adminTypes.POST("/:type_id/cover", controller.UploadTypeCover)
		adminTypes.DELETE("/:type_id", controller.DeleteType)
	}
}
