package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	UserJWTSecret  string
	AdminJWTSecret string
	AdminPepper    string

	UserTokenTTLHours  int
	AdminTokenTTLHours int

	// Initial superadmin credentials; seeding is skipped when the
	// password is empty.
	AdminSeedEmail    string
	AdminSeedPassword string

	CORSOrigins []string

	IdempTTLSecs        int
	DashboardTTLSeconds int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "kredinou"),
		MySQLUser: getenv("MYSQL_USER", "kredinou"),
		MySQLPass: getenv("MYSQL_PASS", "kredinou"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		UserJWTSecret:  getenv("USER_JWT_SECRET", "kredinou-dev-secret"),
		AdminJWTSecret: getenv("ADMIN_JWT_SECRET", "kredinou-admin-dev-secret"),
		AdminPepper:    getenv("ADMIN_PEPPER", ""),

		UserTokenTTLHours:  getenvInt("USER_TOKEN_TTL_HOURS", 24),
		AdminTokenTTLHours: getenvInt("ADMIN_TOKEN_TTL_HOURS", 1),

		AdminSeedEmail:    getenv("ADMIN_EMAIL", "admin@kredinou.ht"),
		AdminSeedPassword: getenv("ADMIN_PASSWORD", ""),

		IdempTTLSecs:        getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		DashboardTTLSeconds: getenvInt("DASHBOARD_CACHE_TTL_SECONDS", 60),
	}

	origins := getenv("CORS_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			c.CORSOrigins = append(c.CORSOrigins, o)
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.UserJWTSecret == "" || c.AdminJWTSecret == "" {
		return errors.New("missing JWT secrets (USER_JWT_SECRET/ADMIN_JWT_SECRET)")
	}
	if c.UserTokenTTLHours <= 0 || c.AdminTokenTTLHours <= 0 {
		return errors.New("token TTLs must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
