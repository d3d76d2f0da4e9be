// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"trimz-backend/models"
	"trimz-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendBookingReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendBookingReminders messages every customer with a confirmed booking
// tomorrow. Failures are logged, never fatal.
func (s *ReminderService) SendBookingReminders() {
	log.Println("Starting booking reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := s.db.Where("status = ? AND date >= ? AND date < ?",
		models.StatusConfirmed, tomorrow, dayAfter).Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		s.remind(&booking)
	}

	log.Printf("Booking reminder processing completed, %d bookings", len(bookings))
}

func (s *ReminderService) remind(booking *models.Booking) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", booking.CustomerID).Error; err != nil {
		log.Printf("Booking %s: customer %s not found: %v", booking.ID, booking.CustomerID, err)
		return
	}

	var hairdresser models.Hairdresser
	if err := s.db.First(&hairdresser, "id = ?", booking.HairdresserID).Error; err != nil {
		log.Printf("Booking %s: hairdresser %s not found: %v", booking.ID, booking.HairdresserID, err)
		return
	}

	serviceName := "your appointment"
	var service models.Service
	if err := s.db.First(&service, "id = ?", booking.ServiceID).Error; err == nil {
		serviceName = service.Name
	}

	message := fmt.Sprintf("Hi %s, a reminder from Trimz: %s at %s tomorrow at %s.",
		customer.Name, serviceName, hairdresser.BusinessName, booking.Date.Format("15:04"))

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	} else {
		to = customer.Phone
	}

	// Send message via Twilio
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}

	// Log the reminder
	reminderLog := models.ReminderLog{
		BookingID:    booking.ID,
		CustomerID:   customer.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %s: %v", booking.ID, err)
	}
}
