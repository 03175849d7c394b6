package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/db"
	"github.com/berberbook/saloniumpro/internal/models"
	"github.com/berberbook/saloniumpro/internal/seed"
)

// DBAdminHandler serves the operational/diagnostic endpoints. Some of them
// deliberately answer HTTP 200 even on logical failure; clients inspect the
// body's status field for those.
type DBAdminHandler struct {
	db *gorm.DB
}

func NewDBAdminHandler(database *gorm.DB) *DBAdminHandler {
	return &DBAdminHandler{db: database}
}

func (h *DBAdminHandler) probe() error {
	var count int64
	return h.db.Model(&models.Customer{}).Count(&count).Error
}

// Check probes the store with a count query.
func (h *DBAdminHandler) Check(c *gin.Context) {
	if err := h.probe(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"connected": false,
			"message":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Veritabanı bağlantısı başarılı",
		"database": "PostgreSQL",
	})
}

// Status always answers 200; the body carries the verdict.
func (h *DBAdminHandler) Status(c *gin.Context) {
	if err := h.probe(); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Veritabanı bağlantısı başarılı",
	})
}

// Init verifies connectivity, syncs the schema and seeds empty tables.
func (h *DBAdminHandler) Init(c *gin.Context) {
	if err := h.probe(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Veritabanına bağlanılamadı",
		})
		return
	}

	if err := db.Migrate(h.db); err != nil {
		zap.L().Error("migration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Veritabanı şeması güncellenemedi",
		})
		return
	}

	seeded, err := seed.IfEmpty(h.db)
	if err != nil {
		zap.L().Error("seeding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Örnek veriler yüklenemedi",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Veritabanı başarıyla başlatıldı ve örnek veriler yüklendi",
		"seeded":  seeded,
	})
}

// Reset truncates every application table and reloads the sample rows.
// Destructive; answers 200 with an error body when reseeding fails.
func (h *DBAdminHandler) Reset(c *gin.Context) {
	if err := seed.Reset(h.db); err != nil {
		zap.L().Error("reset failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Veritabanı başarıyla sıfırlandı ve örnek veriler yüklendi",
	})
}
