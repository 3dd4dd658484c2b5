//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Costing cycle: materials → product → recipe rollup → snapshot refresh
//   - Production planning: batch cost freeze + status lifecycle
//   - Sales: invoice → receivable → payment settlement → PDF
//   - Staff onboarding: signup → pending → owner approval → signin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"insygth/internal/config"
	"insygth/internal/infra"
	"insygth/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // owner JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("insygth_test"),
		tcPostgres.WithUsername("insygth"),
		tcPostgres.WithPassword("insygth"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		BusinessName:       "E2E Bakery",
		// NotifyEmail left empty: notifications stay in-app, no SMTP needed
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	r := router.New(cfg, db, rdb, smtpCB)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	// Owner signs up through the API and is active immediately
	signupResp := do(t, srv, "POST", "/api/auth/signup",
		jsonBody(t, map[string]any{
			"name":          "Owner E2E",
			"email":         "owner@e2e.test",
			"password":      "ownerpass123",
			"role":          "owner",
			"business_name": "E2E Bakery",
		}), "")
	require.Equal(t, http.StatusCreated, signupResp.StatusCode)
	signupResp.Body.Close()

	signinResp := do(t, srv, "POST", "/api/auth/owner-signin",
		jsonBody(t, map[string]string{"email": "owner@e2e.test", "password": "ownerpass123"}), "")
	require.Equal(t, http.StatusOK, signinResp.StatusCode)
	var signin struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, signinResp, &signin)
	require.NotEmpty(t, signin.AccessToken)

	return &testEnv{server: srv, token: signin.AccessToken}
}

func createMaterial(t *testing.T, env *testEnv, name string, qty, total float64) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/materials",
		jsonBody(t, map[string]any{
			"name":        name,
			"category":    "baking",
			"unit":        "kg",
			"quantity":    qty,
			"total_price": total,
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var m struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &m)
	return m.ID
}

func createProduct(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/products",
		jsonBody(t, map[string]any{
			"name":           name,
			"category":       "bakery",
			"order_quantity": 1,
			"total_cost":     0,
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &p)
	return p.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Costing cycle: recipe rollup priced from material snapshots, frozen until
// an explicit refresh.
func TestE2E_RecipeCostingAndRefresh(t *testing.T) {
	env := setupTestEnv(t)

	sugarID := createMaterial(t, env, "Sugar", 100, 20) // unit price 0.2
	milkID := createMaterial(t, env, "Milk", 10, 5)     // unit price 0.5
	productID := createProduct(t, env, "Cake")

	recipeResp := do(t, env.server, "POST", "/api/recipes",
		jsonBody(t, map[string]any{
			"product_id": productID,
			"components": []map[string]any{
				{"material_id": sugarID, "quantity": 40}, // 40 * 0.2 = 8
				{"material_id": milkID, "quantity": 60},  // 60 * 0.5 = 30
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, recipeResp.StatusCode)
	var recipe struct {
		ID                string `json:"id"`
		TotalMaterialCost string `json:"total_material_cost"`
		UnitCost          string `json:"unit_cost"`
		Breakdown         []struct {
			MaterialID string `json:"material_id"`
			Cost       string `json:"cost"`
		} `json:"breakdown"`
	}
	decodeJSON(t, recipeResp, &recipe)
	assert.Equal(t, "38", recipe.TotalMaterialCost)
	assert.Equal(t, "38", recipe.UnitCost) // recipe mode: unit cost == total
	require.Len(t, recipe.Breakdown, 2)
	assert.Equal(t, sugarID, recipe.Breakdown[0].MaterialID)
	assert.Equal(t, "8", recipe.Breakdown[0].Cost)

	// Sugar price doubles: 100 units now cost 40 → unit price 0.4
	updResp := do(t, env.server, "PATCH", "/api/materials/"+sugarID,
		jsonBody(t, map[string]any{"total_price": 40}), env.token)
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	updResp.Body.Close()

	// Stored recipe cost is a snapshot: still 38
	getResp := do(t, env.server, "GET", "/api/recipes/"+recipe.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var unchanged struct {
		TotalMaterialCost string `json:"total_material_cost"`
	}
	decodeJSON(t, getResp, &unchanged)
	assert.Equal(t, "38", unchanged.TotalMaterialCost)

	// Explicit refresh re-prices: 40*0.4 + 60*0.5 = 46
	refreshResp := do(t, env.server, "POST", "/api/recipes/"+recipe.ID+"/refresh-cost", nil, env.token)
	require.Equal(t, http.StatusOK, refreshResp.StatusCode)
	var refreshed struct {
		TotalMaterialCost string `json:"total_material_cost"`
	}
	decodeJSON(t, refreshResp, &refreshed)
	assert.Equal(t, "46", refreshed.TotalMaterialCost)

	// Second recipe for the same product is rejected
	dupResp := do(t, env.server, "POST", "/api/recipes",
		jsonBody(t, map[string]any{
			"product_id": productID,
			"components": []map[string]any{{"material_id": sugarID, "quantity": 1}},
		}), env.token)
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)
	dupResp.Body.Close()
}

// Production planning: batch cost frozen at creation, status transitions enforced.
func TestE2E_ProductionLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	flourID := createMaterial(t, env, "Flour", 50, 25) // unit price 0.5
	productID := createProduct(t, env, "Bread")

	// Plan without a recipe is rejected
	noRecipeResp := do(t, env.server, "POST", "/api/production",
		jsonBody(t, map[string]any{
			"product_id": productID, "quantity": 10,
			"start_date": "2026-09-01", "end_date": "2026-09-05",
		}), env.token)
	assert.Equal(t, http.StatusUnprocessableEntity, noRecipeResp.StatusCode)
	noRecipeResp.Body.Close()

	recipeResp := do(t, env.server, "POST", "/api/recipes",
		jsonBody(t, map[string]any{
			"product_id": productID,
			"components": []map[string]any{{"material_id": flourID, "quantity": 2}}, // unit cost 1
		}), env.token)
	require.Equal(t, http.StatusCreated, recipeResp.StatusCode)
	recipeResp.Body.Close()

	planResp := do(t, env.server, "POST", "/api/production",
		jsonBody(t, map[string]any{
			"product_id": productID, "quantity": 10,
			"start_date": "2026-09-01", "end_date": "2026-09-05",
		}), env.token)
	require.Equal(t, http.StatusCreated, planResp.StatusCode)
	var plan struct {
		ID        string `json:"id"`
		BatchCost string `json:"batch_cost"`
		Status    string `json:"status"`
	}
	decodeJSON(t, planResp, &plan)
	assert.Equal(t, "planned", plan.Status)
	assert.Equal(t, "10", plan.BatchCost) // 1 * 10

	// planned → completed is not a legal transition
	skipResp := do(t, env.server, "PATCH", "/api/production/"+plan.ID+"/status",
		jsonBody(t, map[string]string{"status": "completed"}), env.token)
	assert.Equal(t, http.StatusConflict, skipResp.StatusCode)
	skipResp.Body.Close()

	for _, status := range []string{"in_progress", "completed"} {
		resp := do(t, env.server, "PATCH", "/api/production/"+plan.ID+"/status",
			jsonBody(t, map[string]string{"status": status}), env.token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	// completed is terminal
	termResp := do(t, env.server, "PATCH", "/api/production/"+plan.ID+"/status",
		jsonBody(t, map[string]string{"status": "cancelled"}), env.token)
	assert.Equal(t, http.StatusConflict, termResp.StatusCode)
	termResp.Body.Close()
}

// Sales: pending invoice opens a receivable, payment settles both, PDF renders.
func TestE2E_InvoiceReceivableSettlement(t *testing.T) {
	env := setupTestEnv(t)

	productID := createProduct(t, env, "Cookies")

	invResp := do(t, env.server, "POST", "/api/invoices",
		jsonBody(t, map[string]any{
			"product_id":             productID,
			"quantity":               5,
			"selling_price_per_unit": 25,
			"payment_status":         "pending",
			"customer_name":          "Corner Cafe",
		}), env.token)
	require.Equal(t, http.StatusCreated, invResp.StatusCode)
	var inv struct {
		ID            string `json:"id"`
		InvoiceNumber int64  `json:"invoice_number"`
		TotalAmount   string `json:"total_amount"`
	}
	decodeJSON(t, invResp, &inv)
	assert.Equal(t, int64(1), inv.InvoiceNumber)
	assert.Equal(t, "125", inv.TotalAmount)

	sumResp := do(t, env.server, "GET", "/api/receivables/summary", nil, env.token)
	require.Equal(t, http.StatusOK, sumResp.StatusCode)
	var summary struct {
		Outstanding  string `json:"outstanding"`
		PendingCount int64  `json:"pending_count"`
	}
	decodeJSON(t, sumResp, &summary)
	assert.Equal(t, "125", summary.Outstanding)
	assert.Equal(t, int64(1), summary.PendingCount)

	payResp := do(t, env.server, "PATCH", "/api/invoices/"+inv.ID+"/payment",
		jsonBody(t, map[string]string{"payment_status": "paid"}), env.token)
	require.Equal(t, http.StatusOK, payResp.StatusCode)
	payResp.Body.Close()

	// Paying twice is a conflict
	repayResp := do(t, env.server, "PATCH", "/api/invoices/"+inv.ID+"/payment",
		jsonBody(t, map[string]string{"payment_status": "paid"}), env.token)
	assert.Equal(t, http.StatusConflict, repayResp.StatusCode)
	repayResp.Body.Close()

	sumResp2 := do(t, env.server, "GET", "/api/receivables/summary", nil, env.token)
	require.Equal(t, http.StatusOK, sumResp2.StatusCode)
	var settled struct {
		PendingCount int64 `json:"pending_count"`
	}
	decodeJSON(t, sumResp2, &settled)
	assert.Equal(t, int64(0), settled.PendingCount)

	pdfResp := do(t, env.server, "GET", "/api/invoices/"+inv.ID+"/pdf", nil, env.token)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	pdfResp.Body.Close()
}

// Staff onboarding: signup is pending until the owner approves, then signin works.
func TestE2E_StaffApprovalFlow(t *testing.T) {
	env := setupTestEnv(t)

	signupResp := do(t, env.server, "POST", "/api/auth/signup",
		jsonBody(t, map[string]any{
			"name":     "Staff E2E",
			"email":    "staff@e2e.test",
			"password": "staffpass123",
			"role":     "staff",
		}), "")
	require.Equal(t, http.StatusCreated, signupResp.StatusCode)
	var signup struct {
		PendingApproval bool `json:"pending_approval"`
	}
	decodeJSON(t, signupResp, &signup)
	assert.True(t, signup.PendingApproval)

	// Signin blocked while pending
	blockedResp := do(t, env.server, "POST", "/api/auth/staff-signin",
		jsonBody(t, map[string]string{"email": "staff@e2e.test", "password": "staffpass123"}), "")
	assert.Equal(t, http.StatusForbidden, blockedResp.StatusCode)
	blockedResp.Body.Close()

	listResp := do(t, env.server, "GET", "/api/staff-requests?status=pending", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	decodeJSON(t, listResp, &list)
	require.Len(t, list.Data, 1)

	approveResp := do(t, env.server, "POST", "/api/staff-requests/"+list.Data[0].ID+"/approve", nil, env.token)
	require.Equal(t, http.StatusOK, approveResp.StatusCode)
	approveResp.Body.Close()

	signinResp := do(t, env.server, "POST", "/api/auth/staff-signin",
		jsonBody(t, map[string]string{"email": "staff@e2e.test", "password": "staffpass123"}), "")
	require.Equal(t, http.StatusOK, signinResp.StatusCode)
	var staffSignin struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, signinResp, &staffSignin)
	require.NotEmpty(t, staffSignin.AccessToken)

	// Staff cannot review staff requests
	forbiddenResp := do(t, env.server, "GET", "/api/staff-requests", nil, staffSignin.AccessToken)
	assert.Equal(t, http.StatusForbidden, forbiddenResp.StatusCode)
	forbiddenResp.Body.Close()
}
