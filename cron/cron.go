package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sudharlo/sapzap/db"
	"github.com/sudharlo/sapzap/models"
	"github.com/sudharlo/sapzap/utils"
)

type expiryNotice int

const (
	noticeNone expiryNotice = iota
	noticeExpiringSoon
	noticeExpiredToday
)

// StartCronJobs initializes and starts the scheduler for the daily
// subscription-expiry scan.
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Daily at 09:00 server time
	_, err := c.AddFunc("0 9 * * *", SendSubscriptionNotices)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for subscription notices")
}

// classifyExpiry decides which notice, if any, an expiry date earns on a
// given day: expiring exactly 7 days out warns, expiring today notifies as
// expired. Anything else (e.g. 3 days out) gets nothing.
func classifyExpiry(now, expiry time.Time) expiryNotice {
	todayStart, todayEnd := utils.DayWindow(now, 0)
	warnStart, warnEnd := utils.DayWindow(now, 7)

	if !expiry.Before(todayStart) && expiry.Before(todayEnd) {
		return noticeExpiredToday
	}
	if !expiry.Before(warnStart) && expiry.Before(warnEnd) {
		return noticeExpiringSoon
	}
	return noticeNone
}

// SendSubscriptionNotices scans active subscriptions and notifies providers
// whose window expires today or in exactly 7 days. There is no dedupe: a
// rerun emits the notices again. Subscriptions are not deactivated here;
// that stays a manual admin action.
func SendSubscriptionNotices() {
	now := utils.ToIST(time.Now())
	todayStart, _ := utils.DayWindow(now, 0)
	_, warnEnd := utils.DayWindow(now, 7)

	var providers []models.ServiceProvider
	err := db.DB.Preload("User").
		Where("subscription_active = ? AND subscription_expiry_date >= ? AND subscription_expiry_date < ?",
			true, todayStart, warnEnd).
		Find(&providers).Error
	if err != nil {
		log.Printf("Error fetching providers for subscription notices: %v", err)
		return
	}

	fmt.Printf("Found %d providers in the expiry scan window\n", len(providers))

	for _, provider := range providers {
		switch classifyExpiry(now, provider.Subscription.ExpiryDate) {
		case noticeExpiringSoon:
			if err := notifyExpiringSoon(&provider); err != nil {
				log.Printf("Failed to notify provider %d: %v", provider.ID, err)
			}
		case noticeExpiredToday:
			if err := notifyExpiredToday(&provider); err != nil {
				log.Printf("Failed to notify provider %d: %v", provider.ID, err)
			}
		}
	}
}

func notifyExpiringSoon(provider *models.ServiceProvider) error {
	return db.DB.Create(&models.Notification{
		UserID:  provider.UserID,
		Type:    models.NotificationSubscriptionExpiry,
		Title:   "Subscription expiring soon",
		Message: fmt.Sprintf("Your subscription expires on %s. Renew to keep your listing visible.", provider.Subscription.ExpiryDate.Format("2006-01-02")),
	}).Error
}

func notifyExpiredToday(provider *models.ServiceProvider) error {
	if err := db.DB.Create(&models.Notification{
		UserID:  provider.UserID,
		Type:    models.NotificationSubscriptionExpiry,
		Title:   "Subscription expired today",
		Message: "Your subscription expired today. Renew to keep your listing visible.",
	}).Error; err != nil {
		return err
	}

	if provider.User.Email == "" {
		return nil
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your SapZap subscription expired today.</p>
		<p>Renew from your dashboard to keep receiving bookings.</p>
		<p>Best regards,</p>
		<p>The SapZap Team</p>
	`, provider.User.Name)
	if err := utils.SendEmail(provider.User.Email, "Your SapZap subscription has expired", body); err != nil {
		log.Printf("Failed to send expiry email to %s: %v", provider.User.Email, err)
	}
	return nil
}
