package pokedex_test

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

type fakeResponse struct {
	status int
	body   any
	// block makes the handler wait until the client goes away.
	block bool
}

// fakeAPI serves canned pokeapi resources and counts hits per path.
type fakeAPI struct {
	server    *httptest.Server
	mu        sync.Mutex
	responses map[string]fakeResponse
	hits      map[string]int
	newConns  int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	api := &fakeAPI{
		responses: make(map[string]fakeResponse),
		hits:      make(map[string]int),
	}
	api.server = httptest.NewUnstartedServer(http.HandlerFunc(api.handle))
	api.server.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			api.mu.Lock()
			api.newConns++
			api.mu.Unlock()
		}
	}
	api.server.Start()
	t.Cleanup(api.server.Close)
	return api
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	if resp.block {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if resp.body != nil {
		_ = json.NewEncoder(w).Encode(resp.body)
	}
}

func (f *fakeAPI) BaseUrl() string {
	return f.server.URL + "/api/v2/"
}

func (f *fakeAPI) Url(path string) string {
	return f.server.URL + path
}

func (f *fakeAPI) Set(path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = fakeResponse{status: status, body: body}
}

func (f *fakeAPI) Block(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = fakeResponse{block: true}
}

func (f *fakeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// NewConns counts the connections the server has accepted so far.
func (f *fakeAPI) NewConns() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.newConns
}

func ref(name, url string) map[string]any {
	return map[string]any{"name": name, "url": url}
}

// namesTable puts display at index 5 with language "es", like the real API.
func namesTable(display string) []map[string]any {
	languages := []string{"ja-Hrkt", "ko", "zh-Hant", "fr", "de", "es", "it", "en"}
	names := make([]map[string]any, 0, len(languages))
	for _, lang := range languages {
		name := display + "-" + lang
		if lang == "es" {
			name = display
		}
		names = append(names, map[string]any{"name": name, "language": ref(lang, "")})
	}
	return names
}

func stats(hp, attack, defense, spAttack, spDefense, speed int) []map[string]any {
	values := []struct {
		name  string
		value int
	}{
		{"hp", hp}, {"attack", attack}, {"defense", defense},
		{"special-attack", spAttack}, {"special-defense", spDefense}, {"speed", speed},
	}
	result := make([]map[string]any, 0, len(values))
	for _, v := range values {
		result = append(result, map[string]any{"base_stat": v.value, "effort": 0, "stat": ref(v.name, "")})
	}
	return result
}

type fakePokemon struct {
	id         int
	name       string
	height     int
	weight     int
	types      []string
	abilities  []string
	hidden     []string
	genderRate int
	flavor     []map[string]any
	stats      []map[string]any
}

// addPokemon registers the pokemon resource under its id and name, along
// with its species, types and abilities.
func (f *fakeAPI) addPokemon(p fakePokemon) {
	typeSlots := make([]map[string]any, 0, len(p.types))
	for i, t := range p.types {
		path := "/api/v2/type/" + t + "/"
		typeSlots = append(typeSlots, map[string]any{"slot": i + 1, "type": ref(t, f.Url(path))})
		f.Set(path, http.StatusOK, map[string]any{"name": t, "names": namesTable(displayName(t))})
	}
	abilitySlots := make([]map[string]any, 0)
	addAbility := func(a string, hidden bool) {
		path := "/api/v2/ability/" + a + "/"
		abilitySlots = append(abilitySlots, map[string]any{"is_hidden": hidden, "slot": len(abilitySlots) + 1, "ability": ref(a, f.Url(path))})
		f.Set(path, http.StatusOK, map[string]any{"name": a, "names": namesTable(displayName(a))})
	}
	for _, a := range p.abilities {
		addAbility(a, false)
	}
	for _, a := range p.hidden {
		addAbility(a, true)
	}
	speciesPath := "/api/v2/pokemon-species/" + p.name + "/"
	flavor := p.flavor
	if flavor == nil {
		flavor = []map[string]any{}
	}
	f.Set(speciesPath, http.StatusOK, map[string]any{
		"name":                p.name,
		"gender_rate":         p.genderRate,
		"flavor_text_entries": flavor,
	})
	statTable := p.stats
	if statTable == nil {
		statTable = stats(50, 50, 50, 50, 50, 50)
	}
	body := map[string]any{
		"id":        p.id,
		"name":      p.name,
		"height":    p.height,
		"weight":    p.weight,
		"types":     typeSlots,
		"abilities": abilitySlots,
		"species":   ref(p.name, f.Url(speciesPath)),
		"stats":     statTable,
	}
	f.Set("/api/v2/pokemon/"+strconv.Itoa(p.id)+"/", http.StatusOK, body)
	f.Set("/api/v2/pokemon/"+p.name+"/", http.StatusOK, body)
}

// displayName is the Spanish-looking label the fake serves at index 5.
func displayName(slug string) string {
	labels := map[string]string{
		"grass":       "Planta",
		"poison":      "Veneno",
		"fire":        "Fuego",
		"electric":    "Eléctrico",
		"steel":       "Acero",
		"overgrow":    "Espesura",
		"chlorophyll": "Clorofila",
		"blaze":       "Mar Llamas",
		"solar-power": "Poder Solar",
		"magnet-pull": "Imán",
		"sturdy":      "Robustez",
		"analytic":    "Cálculo Final",
	}
	if label, ok := labels[slug]; ok {
		return label
	}
	return slug
}

func flavorEntry(text, lang string) map[string]any {
	return map[string]any{"flavor_text": text, "language": ref(lang, ""), "version": ref("red", "")}
}

func seedDex(f *fakeAPI) {
	f.addPokemon(fakePokemon{
		id: 1, name: "bulbasaur", height: 7, weight: 69,
		types:      []string{"grass", "poison"},
		abilities:  []string{"overgrow"},
		hidden:     []string{"chlorophyll"},
		genderRate: 1,
		flavor: []map[string]any{
			flavorEntry("A strange seed was\nplanted on its\fback at birth.", "en"),
			flavorEntry("Una rara semilla le fue plantada en el\nlomo al nacer.  ", "es"),
		},
		stats: stats(45, 49, 49, 65, 65, 45),
	})
	f.addPokemon(fakePokemon{
		id: 4, name: "charmander", height: 6, weight: 85,
		types:      []string{"fire"},
		abilities:  []string{"blaze"},
		genderRate: 1,
		stats:      stats(39, 52, 43, 60, 50, 65),
	})
	f.addPokemon(fakePokemon{
		id: 81, name: "magnemite", height: 3, weight: 60,
		types:      []string{"electric", "steel"},
		abilities:  []string{"magnet-pull", "sturdy"},
		hidden:     []string{"analytic"},
		genderRate: -1,
		flavor:     []map[string]any{flavorEntry("Uses anti-gravity\nto stay suspended.", "en")},
		stats:      stats(25, 35, 70, 95, 55, 45),
	})
}
