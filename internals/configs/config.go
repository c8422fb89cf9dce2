package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	MidtransServerKey string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	TwilioAccountSID = GetEnv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken = GetEnv("TWILIO_AUTH_TOKEN")
	TwilioFromNumber = GetEnv("TWILIO_PHONE_NUMBER")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if MidtransServerKey == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY not set, payments run in simulated mode")
	}
	if TwilioAccountSID == "" {
		log.Println("⚠️ TWILIO_ACCOUNT_SID not set, SMS notifications disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
