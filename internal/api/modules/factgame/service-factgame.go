package factgame_module

import (
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"

	"github.com/guessquest/guessquest/internal/factgame"
	"github.com/guessquest/guessquest/internal/stores/scores"
	"github.com/guessquest/guessquest/pkg/llm"
	"github.com/guessquest/guessquest/pkg/utils"
)

var (
	service *factgame.Service
	ledger  scores.Store
)

/** ---- INIT ---- */

// Init wires the fact game pipeline from configuration: the OpenAI-backed
// completion provider, the MySQL score ledger, and the round service on top
func Init(cfg *utils.Config) {
	apiKey := cfg.Get("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("[FACTGAME]: OPENAI_API_KEY not set in environment")
	}

	// Create MySQL config
	dbConfig := mysql.Config{
		User:      cfg.Get("MYSQL_USER"),
		Passwd:    cfg.Get("MYSQL_ROOT_PASSWORD"),
		Net:       "tcp",
		Addr:      fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.Get("MYSQL_PORT")),
		DBName:    cfg.Get("MYSQL_DATABASE"),
		ParseTime: true,
	}

	store, err := scores.NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		log.Fatalf("[FACTGAME]: Failed to initialize score ledger: %v", err)
	}

	provider := llm.NewOpenAIProvider(apiKey,
		llm.WithModel(cfg.GetWithDefault("OPENAI_MODEL", llm.DefaultModel)),
		llm.WithTimeout(cfg.GetDuration("OPENAI_TIMEOUT", llm.DefaultTimeout)),
	)

	InitWithDeps(factgame.NewService(provider, store,
		factgame.WithRoundBudget(cfg.GetDuration("ROUND_BUDGET", factgame.DefaultRoundBudget)),
		factgame.WithRoundGrace(cfg.GetDuration("ROUND_GRACE", factgame.DefaultRoundGrace)),
		factgame.WithRoundScore(cfg.GetIntWithDefault("ROUND_SCORE", factgame.DefaultRoundScore)),
	), store)
}

// InitWithDeps installs an already-built service and ledger. Tests use this
// to run the module against a stub provider and an in-memory ledger.
func InitWithDeps(svc *factgame.Service, store scores.Store) {
	service = svc
	ledger = store
}

// GetService returns the round service the module was initialized with
func GetService() *factgame.Service {
	return service
}

// GetLedger returns the score ledger the module was initialized with
func GetLedger() scores.Store {
	return ledger
}
