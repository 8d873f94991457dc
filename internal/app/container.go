package app

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sayakroy83/Authentication-System/domain"
	"github.com/sayakroy83/Authentication-System/internal/config"
	"github.com/sayakroy83/Authentication-System/internal/infrastructure/auth"
	"github.com/sayakroy83/Authentication-System/internal/infrastructure/database"
	"github.com/sayakroy83/Authentication-System/internal/infrastructure/notifications"
	"github.com/sayakroy83/Authentication-System/internal/infrastructure/repositories"
	"github.com/sayakroy83/Authentication-System/internal/services"
)

// Container holds all dependencies. The Mongo client and the SMTP
// dialer are created once here and shared by every request.
type Container struct {
	Config *config.Config

	MongoClient *mongo.Client

	UserRepo domain.UserRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSvc     domain.MailService
	AuthSvc     domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}

	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, c.Config.MongoURI)
	if err != nil {
		return err
	}

	db := client.Database(c.Config.MongoDatabase)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	c.MongoClient = client
	c.UserRepo = repositories.NewUserRepository(db)
	return nil
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL)
	c.MailSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SenderEmail,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.MailSvc,
		c.Config.VerifyOTPTTL,
		c.Config.ResetOTPTTL,
	)
}

// Close disconnects the Mongo client
func (c *Container) Close() error {
	if c.MongoClient != nil {
		return c.MongoClient.Disconnect(context.Background())
	}
	return nil
}
