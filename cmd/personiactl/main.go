// cmd/personiactl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/config"
	"github.com/joao-vitor-prudente/personia/internal/inference"
	"github.com/joao-vitor-prudente/personia/internal/model"
	"github.com/joao-vitor-prudente/personia/internal/repository"
	"github.com/joao-vitor-prudente/personia/internal/workflow"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	retryReplyCmd.Flags().String("message", "", "Message ID holding the stuck reply")
	retryReplyCmd.Flags().String("persona", "", "Persona ID whose reply is stuck")
	retryReplyCmd.MarkFlagRequired("message")
	retryReplyCmd.MarkFlagRequired("persona")

	tokenCmd.Flags().String("email", "", "Email for the generated assertion")
	tokenCmd.Flags().String("org", "", "Organization ID the assertion grants")
	tokenCmd.Flags().String("role", "member", "Role within the organization")
	tokenCmd.Flags().Duration("expiry", 24*time.Hour, "Assertion lifetime")
	tokenCmd.MarkFlagRequired("email")
	tokenCmd.MarkFlagRequired("org")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(retryReplyCmd)
	rootCmd.AddCommand(tokenCmd)
}

var rootCmd = &cobra.Command{
	Use:   "personiactl",
	Short: "Operator tooling for the personia backend",
	Long:  `personiactl runs schema migrations and operator escape hatches against a live deployment.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db := openDatabase(cfg)

		err := db.AutoMigrate(
			&model.Project{},
			&model.Persona{},
			&model.Experiment{},
			&model.Assistant{},
			&model.Message{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated")
	},
}

// retryReplyCmd re-drives a single reply that stayed pending after its
// workflow exhausted retries. It calls the same activity code the worker
// runs, so the one-way pending to finished transition still holds.
var retryReplyCmd = &cobra.Command{
	Use:   "retry-reply",
	Short: "Re-drive one stuck pending reply",
	Run: func(cmd *cobra.Command, args []string) {
		messageID, err := uuid.Parse(mustFlag(cmd, "message"))
		if err != nil {
			log.Fatalf("Invalid message ID: %v", err)
		}
		personaID, err := uuid.Parse(mustFlag(cmd, "persona"))
		if err != nil {
			log.Fatalf("Invalid persona ID: %v", err)
		}

		cfg := loadConfig()
		db := openDatabase(cfg)
		ctx := context.Background()

		projectRepo := repository.NewProjectRepository(db)
		personaRepo := repository.NewPersonaRepository(db)
		experimentRepo := repository.NewExperimentRepository(db)
		assistantRepo := repository.NewAssistantRepository(db)
		messageRepo := repository.NewMessageRepository(db)

		activities := workflow.NewActivities(
			projectRepo,
			personaRepo,
			experimentRepo,
			assistantRepo,
			messageRepo,
			inference.NewOpenAIClient(cfg.OpenAI.APIKey),
			cfg.OpenAI.AssistantModel,
			cfg.OpenAI.ResponseModel,
		)

		message, err := messageRepo.FindByID(ctx, messageID)
		if err != nil {
			log.Fatalf("Failed to load message: %v", err)
		}
		reply, ok := message.FindReply(personaID)
		if !ok {
			log.Fatalf("Persona %s has no reply on message %s", personaID, messageID)
		}
		if !reply.Pending() {
			fmt.Println("Reply is already finished, nothing to do")
			return
		}

		experiment, err := experimentRepo.FindByID(ctx, message.ExperimentID)
		if err != nil {
			log.Fatalf("Failed to load experiment: %v", err)
		}
		project, err := projectRepo.FindByID(ctx, experiment.ProjectID)
		if err != nil {
			log.Fatalf("Failed to load project: %v", err)
		}
		persona, err := personaRepo.FindByID(ctx, personaID)
		if err != nil {
			log.Fatalf("Failed to load persona: %v", err)
		}

		response, err := createResponse(ctx, activities, messageRepo, message, experiment, project, persona)
		if err != nil {
			log.Fatalf("Failed to create response: %v", err)
		}

		err = activities.FinishReply(ctx, workflow.FinishReplyInput{
			MessageID: message.ID,
			PersonaID: personaID,
			Response:  *response,
		})
		if err != nil {
			log.Fatalf("Failed to finish reply: %v", err)
		}

		fmt.Printf("Reply finished for persona %s on message %s\n", personaID, messageID)
	},
}

// createResponse picks the turn shape: a persona with a finished reply on
// the preceding message chains onto it, a persona without one, because the
// thread is empty or the persona joined the experiment later, opens its
// conversation with the full instruction prompt.
func createResponse(
	ctx context.Context,
	activities *workflow.Activities,
	messages repository.MessageRepositoryIface,
	message *model.Message,
	experiment *model.Experiment,
	project *model.Project,
	persona *model.Persona,
) (*inference.Response, error) {
	page, err := messages.FindPageByExperiment(ctx, experiment.ID, repository.PaginationOpts{
		NumItems: 1,
		Cursor:   repository.MessageCursor(*message),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load preceding message: %w", err)
	}

	var previousReplyID string
	if len(page.Messages) > 0 {
		previous := page.Messages[0]
		previousReply, ok := previous.FindReply(persona.ID)
		if ok && previousReply.Pending() {
			return nil, fmt.Errorf("persona %s still has a pending reply on the preceding message %s, retry that one first", persona.ID, previous.ID)
		}
		if ok {
			previousReplyID = previousReply.OpenaiReplyID
		}
	}

	if previousReplyID == "" {
		return activities.CreateInitialResponse(ctx, workflow.CreateInitialResponseInput{
			Content:        message.Content,
			Persona:        *persona,
			Project:        *project,
			ExperimentName: experiment.Name,
		})
	}

	return activities.CreateFollowupResponse(ctx, workflow.CreateFollowupResponseInput{
		Content:            message.Content,
		PreviousResponseID: previousReplyID,
	})
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed identity assertion for local testing",
	Run: func(cmd *cobra.Command, args []string) {
		email := mustFlag(cmd, "email")
		org := mustFlag(cmd, "org")
		role, _ := cmd.Flags().GetString("role")
		expiry, _ := cmd.Flags().GetDuration("expiry")

		cfg := loadConfig()
		parser := auth.NewIdentityParser(cfg.JWT.Secret)

		token, err := parser.Generate(email, map[string]string{org: role}, expiry)
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}

		fmt.Println(token)
	},
}

func mustFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil || value == "" {
		log.Fatalf("Missing required flag --%s", name)
	}
	return value
}

func loadConfig() *config.Config {
	_ = godotenv.Load()
	return config.Load()
}

func openDatabase(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
