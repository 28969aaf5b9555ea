//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	httpapi "github.com/critter-exchange/critter-exchange/internal/api/http"
	"github.com/critter-exchange/critter-exchange/internal/application/account"
	"github.com/critter-exchange/critter-exchange/internal/application/auth"
	"github.com/critter-exchange/critter-exchange/internal/application/friend"
	"github.com/critter-exchange/critter-exchange/internal/application/item"
	"github.com/critter-exchange/critter-exchange/internal/application/trade"
	"github.com/critter-exchange/critter-exchange/internal/infrastructure/postgres"
	"github.com/critter-exchange/critter-exchange/internal/infrastructure/sse"
)

const testPassword = "S3cure!Passw0rd"

type trainer struct {
	client    *http.Client
	accountID string
	username  string
}

func TestTradeLifecycleIntegration(t *testing.T) {
	server, cleanup := newTestServer(t)
	defer cleanup()

	ash := registerTrainer(t, server.URL, "ash01")
	misty := registerTrainer(t, server.URL, "misty02")
	befriend(t, server.URL, ash, misty)

	ashItem := grantItem(t, server.URL, ash, 25)
	mistyItem := grantItem(t, server.URL, misty, 120)

	// propose ash -> misty
	var proposed map[string]interface{}
	postJSON(t, ash.client, server.URL+"/v1/trades", map[string]string{
		"receiverId":      misty.accountID,
		"requesterItemId": ashItem,
		"receiverItemId":  mistyItem,
	}, &proposed)
	tradeID := proposed["tradeId"].(string)

	// second proposal on the same item must be refused
	status, body := postJSONStatus(t, ash.client, server.URL+"/v1/trades", map[string]string{
		"receiverId":      misty.accountID,
		"requesterItemId": ashItem,
		"receiverItemId":  mistyItem,
	})
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for locked item, got %d: %s", status, body)
	}

	// requester cannot decide
	status, body = postJSONStatus(t, ash.client, server.URL+"/v1/trades/"+tradeID+"/confirm", nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for requester confirm, got %d: %s", status, body)
	}

	// receiver confirms; ownership must swap atomically
	postJSON(t, misty.client, server.URL+"/v1/trades/"+tradeID+"/confirm", nil, nil)

	if owner := itemOwner(t, server.URL, ash, misty.accountID, ashItem); !owner {
		t.Fatalf("requester item did not move to receiver")
	}
	if owner := itemOwner(t, server.URL, ash, ash.accountID, mistyItem); !owner {
		t.Fatalf("receiver item did not move to requester")
	}

	// a decided trade stays decided
	status, body = postJSONStatus(t, misty.client, server.URL+"/v1/trades/"+tradeID+"/deny", nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for double decision, got %d: %s", status, body)
	}
}

func TestTradeDenyIntegration(t *testing.T) {
	server, cleanup := newTestServer(t)
	defer cleanup()

	ash := registerTrainer(t, server.URL, "ash01")
	misty := registerTrainer(t, server.URL, "misty02")
	befriend(t, server.URL, ash, misty)

	ashItem := grantItem(t, server.URL, ash, 25)
	mistyItem := grantItem(t, server.URL, misty, 120)

	var proposed map[string]interface{}
	postJSON(t, ash.client, server.URL+"/v1/trades", map[string]string{
		"receiverId":      misty.accountID,
		"requesterItemId": ashItem,
		"receiverItemId":  mistyItem,
	}, &proposed)
	tradeID := proposed["tradeId"].(string)

	postJSON(t, misty.client, server.URL+"/v1/trades/"+tradeID+"/deny", nil, nil)

	// items stay put and unlock for a new proposal
	if owner := itemOwner(t, server.URL, ash, ash.accountID, ashItem); !owner {
		t.Fatalf("requester item moved on deny")
	}
	var again map[string]interface{}
	postJSON(t, ash.client, server.URL+"/v1/trades", map[string]string{
		"receiverId":      misty.accountID,
		"requesterItemId": ashItem,
		"receiverItemId":  mistyItem,
	}, &again)
}

func TestProposalPolicyIntegration(t *testing.T) {
	server, cleanup := newTestServer(t)
	defer cleanup()

	// not friends: the default policy refuses the proposal
	ash := registerTrainer(t, server.URL, "ash01")
	misty := registerTrainer(t, server.URL, "misty02")
	ashItem := grantItem(t, server.URL, ash, 25)
	mistyItem := grantItem(t, server.URL, misty, 120)

	status, body := postJSONStatus(t, ash.client, server.URL+"/v1/trades", map[string]string{
		"receiverId":      misty.accountID,
		"requesterItemId": ashItem,
		"receiverItemId":  mistyItem,
	})
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for non-friends, got %d: %s", status, body)
	}
}

func registerTrainer(t *testing.T, baseURL, username string) *trainer {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Timeout: 10 * time.Second, Jar: jar}

	email := username + "@pallet.town"
	postJSON(t, client, baseURL+"/v1/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": testPassword,
	}, nil)

	var login map[string]interface{}
	postJSON(t, client, baseURL+"/v1/auth/login", map[string]string{
		"email":    email,
		"password": testPassword,
	}, &login)
	acct := login["account"].(map[string]interface{})

	return &trainer{
		client:    client,
		accountID: acct["accountId"].(string),
		username:  username,
	}
}

func befriend(t *testing.T, baseURL string, a, b *trainer) {
	t.Helper()
	postJSON(t, a.client, baseURL+"/v1/friends/requests", map[string]string{"username": b.username}, nil)
	postJSON(t, b.client, baseURL+"/v1/friends/requests/"+a.accountID+"/accept", nil, nil)
}

func grantItem(t *testing.T, baseURL string, tr *trainer, speciesID int) string {
	t.Helper()
	var created map[string]interface{}
	postJSON(t, tr.client, baseURL+"/v1/items", map[string]int{"speciesId": speciesID}, &created)
	return created["itemId"].(string)
}

func itemOwner(t *testing.T, baseURL string, viewer *trainer, ownerID, itemID string) bool {
	t.Helper()
	resp, err := viewer.client.Get(baseURL + "/v1/items/of/" + ownerID)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		Items []struct {
			ItemID string `json:"itemId"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode inventory: %v", err)
	}
	for _, it := range out.Items {
		if it.ItemID == itemID {
			return true
		}
	}
	return false
}

func postJSON(t *testing.T, client *http.Client, url string, body interface{}, out interface{}) {
	t.Helper()
	status, respBody := postJSONStatus(t, client, url, body)
	if status >= 300 {
		t.Fatalf("post %s status %d: %s", url, status, respBody)
	}
	if out != nil {
		if err := json.Unmarshal([]byte(respBody), out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func postJSONStatus(t *testing.T, client *http.Client, url string, body interface{}) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(respBody)
}

func newTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()
	dsn := testDatabaseURL(t)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("db pool: %v", err)
	}

	root := repoRoot(t)
	if err := postgres.RunMigrations(ctx, pool, filepath.Join(root, "internal", "migrations")); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}
	if err := resetDatabase(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("reset db: %v", err)
	}
	if err := seedSpecies(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("seed species: %v", err)
	}

	logger := zerolog.Nop()
	accountRepo := postgres.NewAccountRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	friendRepo := postgres.NewFriendRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	tradeRepo := postgres.NewTradeRepository(pool)

	sseHub := sse.NewHub()

	authSvc := auth.NewService(accountRepo, sessionRepo, []byte("integration-test-secret"), 24*time.Hour, logger)
	accountSvc := account.NewService(accountRepo, logger)
	friendSvc := friend.NewService(friendRepo, accountRepo, itemRepo, catalogRepo, logger)
	itemSvc := item.NewService(itemRepo, catalogRepo, logger)

	policy, err := trade.NewProposalPolicy("are_friends == true")
	if err != nil {
		pool.Close()
		t.Fatalf("policy: %v", err)
	}
	tradeSvc := trade.NewService(tradeRepo, itemRepo, accountRepo, catalogRepo, sseHub, 24*time.Hour, logger)

	apiServer := httpapi.NewServer(authSvc, accountSvc, friendSvc, itemSvc, tradeSvc, policy, sseHub, "critter_session", false)
	server := httptest.NewServer(apiServer.Router())

	cleanup := func() {
		server.Close()
		sseHub.Stop()
		pool.Close()
	}

	return server, cleanup
}

func testDatabaseURL(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		return dsn
	}
	t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	return ""
}

func repoRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			trades,
			items,
			friends,
			sessions,
			accounts
		RESTART IDENTITY CASCADE
	`)
	return err
}

func seedSpecies(ctx context.Context, pool *pgxpool.Pool) error {
	species := map[int]string{25: "Pikachu", 120: "Staryu", 129: "Magikarp"}
	for dex, name := range species {
		if _, err := pool.Exec(ctx, `
			INSERT INTO species (dex_number, name) VALUES ($1,$2)
			ON CONFLICT (dex_number) DO NOTHING
		`, dex, name); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}
