package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	budgetapp "github.com/finbooks/backend/internal/application/budget"
	financeapp "github.com/finbooks/backend/internal/application/finance"
	partnerapp "github.com/finbooks/backend/internal/application/partner"
	treasuryapp "github.com/finbooks/backend/internal/application/treasury"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/persistence"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/finbooks/backend/internal/interfaces/http/dto"
	"github.com/finbooks/backend/internal/interfaces/http/middleware"
	"github.com/finbooks/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires the full handler stack over an in-memory database so handler
// tests exercise binding, services and persistence end to end.
type testEnv struct {
	engine    *gin.Engine
	db        *gorm.DB
	companyID uuid.UUID
	userID    uuid.UUID

	contacts     *persistence.GormContactRepository
	bankAccounts *persistence.GormBankAccountRepository
	movements    *persistence.GormMovementRepository
	accounts     *persistence.GormFinancialAccountRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.FinancialAccountModel{},
		&models.InstallmentModel{},
		&models.PaymentModel{},
		&models.BankAccountModel{},
		&models.MovementModel{},
		&models.BudgetModel{},
		&models.BudgetItemModel{},
		&models.ContactModel{},
		&models.CategoryModel{},
		&models.DepartmentModel{},
	))

	env := &testEnv{
		db:           db,
		companyID:    uuid.New(),
		userID:       uuid.New(),
		contacts:     persistence.NewGormContactRepository(db),
		bankAccounts: persistence.NewGormBankAccountRepository(db),
		movements:    persistence.NewGormMovementRepository(db),
		accounts:     persistence.NewGormFinancialAccountRepository(db),
	}

	categoryRepo := persistence.NewGormCategoryRepository(db)
	departmentRepo := persistence.NewGormDepartmentRepository(db)
	installmentRepo := persistence.NewGormInstallmentReadRepository(db)
	budgetRepo := persistence.NewGormBudgetRepository(db)

	accountService := financeapp.NewAccountService(
		env.accounts, env.contacts, categoryRepo, departmentRepo, env.bankAccounts,
	)
	postingService := financeapp.NewPaymentPostingService(persistence.NewGormTransactionScope(db))
	installmentService := financeapp.NewInstallmentService(installmentRepo, postingService)
	movementService := treasuryapp.NewMovementService(
		env.movements, env.bankAccounts, categoryRepo, env.contacts, departmentRepo,
	)
	bankAccountService := treasuryapp.NewBankAccountService(env.bankAccounts, env.movements)
	cashFlowService := treasuryapp.NewCashFlowService(env.bankAccounts, env.movements, installmentRepo)
	budgetService := budgetapp.NewBudgetService(budgetRepo, env.contacts, persistence.NewGormBudgetTransactionScope(db))
	contactService := partnerapp.NewContactService(env.contacts)
	categoryService := partnerapp.NewCategoryService(categoryRepo)
	departmentService := partnerapp.NewDepartmentService(departmentRepo)

	engine := gin.New()
	// stand-in for the JWT middleware: inject the test identity directly
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.JWTCompanyIDKey, env.companyID.String())
		c.Set(middleware.JWTUserIDKey, env.userID.String())
		c.Next()
	})

	router.NewRouter(engine).
		Register(NewFinancialAccountHandler(accountService, postingService)).
		Register(NewInstallmentHandler(installmentService)).
		Register(NewMovementHandler(movementService)).
		Register(NewBankAccountHandler(bankAccountService)).
		Register(NewCashFlowHandler(cashFlowService)).
		Register(NewBudgetHandler(budgetService)).
		Register(NewContactHandler(contactService)).
		Register(NewCategoryHandler(categoryService)).
		Register(NewDepartmentHandler(departmentService)).
		Register(NewSystemHandler(nil)).
		Setup()

	env.engine = engine
	return env
}

// do performs a request with an optional JSON body and decodes the envelope
func (env *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// treasuryFilter builds a movement filter with just a page size
func treasuryFilter(limit int) treasury.MovementFilter {
	filter := treasury.MovementFilter{}
	filter.Limit = limit
	return filter
}

// dataMap returns the response data as a generic map
func dataMap(t *testing.T, resp dto.Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "response data is not an object: %T", resp.Data)
	return m
}
