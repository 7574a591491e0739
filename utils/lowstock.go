package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"bakery/config"
)

// CheckLowStock is the daily inventory sweep. Every ingredient below its
// reorder level is logged, and an alert email goes out when ALERT_EMAIL_TO
// is configured.
func CheckLowStock() {
	log.Println("Starting low stock check")

	low := config.Store.LowStock()
	if len(low) == 0 {
		log.Println("Low stock check: all ingredients above reorder level")
		return
	}

	var lines []string
	for _, ing := range low {
		log.Printf("Low stock: %s at %.2f %s (reorder level %.2f)", ing.Name, ing.Quantity, ing.Unit, ing.ReorderLevel)
		lines = append(lines, fmt.Sprintf("%s: %.2f %s left, reorder level %.2f", ing.Name, ing.Quantity, ing.Unit, ing.ReorderLevel))
	}

	to := os.Getenv("ALERT_EMAIL_TO")
	if to == "" {
		log.Println("ALERT_EMAIL_TO not set, skipping alert email")
		return
	}
	from := config.Env("ALERT_EMAIL_FROM", os.Getenv("SMTP_USER"))

	body := fmt.Sprintf("Ingredients below reorder level:\n\n%s\n", strings.Join(lines, "\n"))
	if err := SendEmail(from, to, "Bakery low stock alert", body); err != nil {
		log.Printf("Failed to send low stock alert: %v", err)
		return
	}
	log.Printf("Low stock alert sent for %d ingredients", len(low))
}
