/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = "5000"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	SSL    bool   `json:"ssl" envconfig:"NEXABANK_SERVER_SSL"`
	Domain string `json:"domain" envconfig:"NEXABANK_SERVER_SSL_DOMAIN"`
	Email  string `json:"ssl_email" envconfig:"NEXABANK_SERVER_SSL_EMAIL"`
	Port   string `json:"port" envconfig:"NEXABANK_SERVER_PORT"`
}

type DataSourceConfig struct {
	Dns string `json:"dns" envconfig:"NEXABANK_DATA_SOURCE_DNS"`
}

type RedisConfig struct {
	Dns string `json:"dns" envconfig:"NEXABANK_REDIS_DNS"`
}

// LedgerConfig carries the money-movement policy constants. Fees are stored
// in kobo; floors and the opening balance are expressed in naira because that
// is the unit callers supply amounts in.
type LedgerConfig struct {
	TransferFeeKobo     int64 `json:"transfer_fee_kobo" envconfig:"NEXABANK_TRANSFER_FEE_KOBO"`
	AirtimeMinimumNaira int64 `json:"airtime_minimum_naira" envconfig:"NEXABANK_AIRTIME_MINIMUM_NAIRA"`
	BillMinimumNaira    int64 `json:"bill_minimum_naira" envconfig:"NEXABANK_BILL_MINIMUM_NAIRA"`
	OpeningBalanceNaira int64 `json:"opening_balance_naira" envconfig:"NEXABANK_OPENING_BALANCE_NAIRA"`
}

type SessionConfig struct {
	TokenSecret        string `json:"token_secret" envconfig:"NEXABANK_TOKEN_SECRET"`
	TokenExpireHours   int    `json:"token_expire_hours" envconfig:"NEXABANK_TOKEN_EXPIRE_HOURS"`
	IdleTimeoutMinutes int    `json:"idle_timeout_minutes" envconfig:"NEXABANK_IDLE_TIMEOUT_MINUTES"`
	OTPExpireMinutes   int    `json:"otp_expire_minutes" envconfig:"NEXABANK_OTP_EXPIRE_MINUTES"`
}

type RateLimitConfig struct {
	RequestsPerSecond  *float64 `json:"requests_per_second" envconfig:"NEXABANK_RATE_LIMIT_RPS"`
	Burst              *int     `json:"burst" envconfig:"NEXABANK_RATE_LIMIT_BURST"`
	CleanupIntervalSec *int     `json:"cleanup_interval_sec" envconfig:"NEXABANK_RATE_LIMIT_CLEANUP_INTERVAL_SEC"`
}

type SlackWebhook struct {
	WebhookUrl string `json:"webhook_url"`
}

type MailWebhook struct {
	Url     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

type Notification struct {
	Slack       SlackWebhook `json:"slack"`
	MailWebhook MailWebhook  `json:"mail_webhook"`
}

type Configuration struct {
	ProjectName  string           `json:"project_name" envconfig:"NEXABANK_PROJECT_NAME"`
	Server       ServerConfig     `json:"server"`
	DataSource   DataSourceConfig `json:"data_source"`
	Redis        RedisConfig      `json:"redis"`
	Ledger       LedgerConfig     `json:"ledger"`
	Session      SessionConfig    `json:"session"`
	Notification Notification     `json:"notification"`
	RateLimit    RateLimitConfig  `json:"rate_limit"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("nexabank", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called nexabank.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "NexaBank Server"
	}

	if cnf.DataSource.Dns == "" {
		log.Println("Error: Data source DNS is empty. It's a required field.")
		return errors.New("data source DNS is required")
	}

	if cnf.Redis.Dns == "" {
		log.Println("Error: Redis DNS is empty. It's a required field.")
		return errors.New("redis DNS is required")
	}

	if cnf.Session.TokenSecret == "" {
		log.Println("Error: Session token secret is empty. It's a required field.")
		return errors.New("session token secret is required")
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.DataSource.Dns = strings.TrimSpace(cnf.DataSource.Dns)
	cnf.Redis.Dns = strings.TrimSpace(cnf.Redis.Dns)

	// Set default value for Port if it's empty
	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	// Ledger policy defaults mirror the launch policy: ₦0.50 transfer fee,
	// ₦50 airtime floor, ₦100 bill floor, ₦200,000 opening balance.
	if cnf.Ledger.TransferFeeKobo == 0 {
		cnf.Ledger.TransferFeeKobo = 50
	}
	if cnf.Ledger.AirtimeMinimumNaira == 0 {
		cnf.Ledger.AirtimeMinimumNaira = 50
	}
	if cnf.Ledger.BillMinimumNaira == 0 {
		cnf.Ledger.BillMinimumNaira = 100
	}
	if cnf.Ledger.OpeningBalanceNaira == 0 {
		cnf.Ledger.OpeningBalanceNaira = 200000
	}

	if cnf.Session.TokenExpireHours == 0 {
		cnf.Session.TokenExpireHours = 24
	}
	if cnf.Session.IdleTimeoutMinutes == 0 {
		cnf.Session.IdleTimeoutMinutes = 30
	}
	if cnf.Session.OTPExpireMinutes == 0 {
		cnf.Session.OTPExpireMinutes = 5
	}

	// Rate limiting is disabled by default (when both RPS and Burst are nil)
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		defaultBurst := 2 * int(*cnf.RateLimit.RequestsPerSecond)
		cnf.RateLimit.Burst = &defaultBurst
		log.Printf("Warning: Rate limit burst not specified. Setting default value: %d", defaultBurst)
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		defaultRPS := float64(*cnf.RateLimit.Burst) / 2
		cnf.RateLimit.RequestsPerSecond = &defaultRPS
		log.Printf("Warning: Rate limit RPS not specified. Setting default value: %.2f", defaultRPS)
	}
	if cnf.RateLimit.CleanupIntervalSec == nil {
		defaultCleanup := 10800 // 3 hours in seconds
		cnf.RateLimit.CleanupIntervalSec = &defaultCleanup
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
