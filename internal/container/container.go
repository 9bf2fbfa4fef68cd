package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lucasweiblen/clean-architecture/config"
	"github.com/lucasweiblen/clean-architecture/internal/infrastructure/crypto"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	cfg          *config.Config
	logger       *logrus.Logger
	mongoDB      *mongo.Database
	redisClient  *redis.Client
	tokenAdapter *crypto.JWTAdapter
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongo(db *mongo.Database) { mongoDB = db }
func GetMongo() *mongo.Database   { return mongoDB }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetTokenAdapter(a *crypto.JWTAdapter) { tokenAdapter = a }
func GetTokenAdapter() *crypto.JWTAdapter  { return tokenAdapter }
