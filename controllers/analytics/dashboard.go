package analyticsControllers

import (
	"net/http"
	"time"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardStats is the admin landing-page summary. The four numbers are
// independent point-in-time queries; under concurrent writes they may
// reflect slightly different instants.
type DashboardStats struct {
	TodayOrders    int64   `json:"todayOrders"`
	PendingOrders  int64   `json:"pendingOrders"`
	TodayRevenue   float64 `json:"todayRevenue"`
	TotalCustomers int64   `json:"totalCustomers"`
}

// startOfToday returns midnight of the current UTC calendar day.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetDashboardStats computes the dashboard numbers over the current store state.
func GetDashboardStats(db *gorm.DB) (DashboardStats, error) {
	var stats DashboardStats
	today := startOfToday()

	if err := db.Model(&models.Order{}).
		Where("created_at >= ?", today).
		Count(&stats.TodayOrders).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return stats, err
	}

	// Today's revenue, cancelled orders excluded; zero when there are none.
	if err := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ? AND status <> ?", today, models.OrderStatusCancelled).
		Scan(&stats.TodayRevenue).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

// GET /admin/analytics/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := GetDashboardStats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
