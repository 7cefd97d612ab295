package cube

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/scryfall"
	"github.com/lepinkainen/paupercube/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fakeScryfall struct {
	*httptest.Server
	requests atomic.Int32
}

// newFakeScryfall answers searches from cards keyed by the q parameter.
// Unknown names get a 404 the way the real search endpoint does.
func newFakeScryfall(t *testing.T, cards map[string][]carddata.Printing) *fakeScryfall {
	t.Helper()

	fs := &fakeScryfall{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")

		printings, ok := cards[r.URL.Query().Get("q")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"object":"error","code":"not_found","status":404,"details":"No cards found"}`))
			return
		}

		_ = json.NewEncoder(w).Encode(scryfall.SearchResult{
			Object:     "list",
			TotalCards: len(printings),
			Data:       printings,
		})
	}))
	t.Cleanup(fs.Close)

	return fs
}

func printing(name, setName, released, number string) carddata.Printing {
	usd := "0.25"
	return carddata.Printing{
		Name:            name,
		Lang:            "en",
		ReleasedAt:      released,
		ManaCost:        "{W}",
		TypeLine:        "Creature",
		Set:             "tst",
		SetName:         setName,
		SetType:         "expansion",
		CollectorNumber: number,
		Rarity:          "common",
		Prices:          carddata.Prices{USD: &usd},
	}
}

// setupWorkspace writes the given lists into a sandboxed lists directory and
// returns Params pointing at it.
func setupWorkspace(t *testing.T, lists map[string][]string) (*testutil.TestEnv, Params) {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env)
	env.MkdirAll("lists")
	for file, lines := range lists {
		env.WriteLines("lists/"+file, lines...)
	}

	return env, ParamsFromConfig()
}

func seedCache(t *testing.T, path string, records map[string]*carddata.CardRecord) {
	t.Helper()

	cache := carddata.NewCache()
	for name, record := range records {
		cache.Put(name, record)
	}
	require.NoError(t, cache.Persist(path))
}
