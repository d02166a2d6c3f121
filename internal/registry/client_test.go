package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		PageSize:          2,
		Sponsor:           "AstraZeneca",
		InterventionQuery: "cell therapy OR gene therapy",
		RetryMax:          0,
		Timeout:           5 * time.Second,
	}
}

func makeStudy(nctID, sponsor string, collaborators ...string) map[string]any {
	collabs := make([]map[string]any, 0, len(collaborators))
	for _, name := range collaborators {
		collabs = append(collabs, map[string]any{"name": name})
	}

	return map[string]any{
		"protocolSection": map[string]any{
			"identificationModule": map[string]any{
				"nctId":      nctID,
				"briefTitle": "Study " + nctID,
			},
			"statusModule": map[string]any{
				"overallStatus": "RECRUITING",
				"startDateStruct": map[string]any{
					"date": "2024-01-15",
				},
			},
			"designModule": map[string]any{
				"studyType": "INTERVENTIONAL",
				"phases":    []string{"PHASE2"},
				"designInfo": map[string]any{
					"allocation": "RANDOMIZED",
				},
				"enrollmentInfo": map[string]any{"count": 120},
			},
			"sponsorCollaboratorsModule": map[string]any{
				"leadSponsor":   map[string]any{"name": sponsor, "class": "INDUSTRY"},
				"collaborators": collabs,
			},
			"conditionsModule": map[string]any{
				"conditions": []string{"Hepatocellular Carcinoma"},
			},
			"interventionsModule": map[string]any{
				"interventions": []map[string]any{
					{"type": "BIOLOGICAL", "name": "CAR-T infusion"},
				},
			},
			"eligibilityModule": map[string]any{
				"eligibilityCriteria": "Inclusion: adults 18+",
				"sex":                 "ALL",
				"minimumAge":          "18 Years",
			},
			"contactsModule": map[string]any{
				"locations": []map[string]any{
					{
						"facility": map[string]any{
							"name": "Research Site", "city": "Houston", "zip": "77030", "country": "United States",
						},
						"status": "RECRUITING",
					},
				},
			},
		},
	}
}

func TestFetchSponsorTrials_FollowsPageToken(t *testing.T) {
	var requestedTokens []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("pageToken")
		requestedTokens = append(requestedTokens, token)

		assert.Equal(t, "AstraZeneca", r.URL.Query().Get("query.spons"))
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		var body map[string]any
		switch token {
		case "":
			body = map[string]any{
				"studies":       []any{makeStudy("NCT00000001", "AstraZeneca"), makeStudy("NCT00000002", "AstraZeneca")},
				"nextPageToken": "page-2",
			}
		case "page-2":
			body = map[string]any{
				"studies": []any{makeStudy("NCT00000003", "AstraZeneca")},
			}
		default:
			t.Fatalf("unexpected page token %q", token)
		}

		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	trials := client.FetchSponsorTrials(context.Background())

	require.Len(t, trials, 3)
	assert.Equal(t, []string{"", "page-2"}, requestedTokens)

	first := trials[0]
	assert.Equal(t, "NCT00000001", first.NCTID)
	assert.Equal(t, "Study NCT00000001", first.BriefTitle)
	assert.Equal(t, "RECRUITING", first.OverallStatus)
	assert.Equal(t, "2024-01-15", first.StartDate)
	assert.Equal(t, []string{"PHASE2"}, first.Phases)
	assert.Equal(t, "AstraZeneca", first.LeadSponsor)
	assert.Equal(t, 120, first.Enrollment)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "Houston", first.Locations[0].City)
	assert.False(t, first.LastFetched.IsZero())
}

func TestFetchCollaboratorTrials_FiltersUninvolvedStudies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AstraZeneca", r.URL.Query().Get("query.term"))

		body := map[string]any{
			"studies": []any{
				makeStudy("NCT00000010", "Other Pharma"),                              // no involvement
				makeStudy("NCT00000011", "Other Pharma", "AstraZeneca AB"),            // collaborator
				makeStudy("NCT00000012", "astrazeneca pharmaceuticals"),               // lead, case-insensitive
				makeStudy("NCT00000013", "Other Pharma", "University", "Third Party"), // no involvement
			},
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	trials := client.FetchCollaboratorTrials(context.Background())

	require.Len(t, trials, 2)
	assert.Equal(t, "NCT00000011", trials[0].NCTID)
	assert.Equal(t, "NCT00000012", trials[1].NCTID)
}

func TestFetchAll_DedupesAcrossStrategies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.URL.Query().Get("query.spons") != "" {
			body = map[string]any{
				"studies": []any{makeStudy("NCT00000020", "AstraZeneca"), makeStudy("NCT00000021", "AstraZeneca")},
			}
		} else {
			// Collaborator strategy returns one overlap and one new record.
			body = map[string]any{
				"studies": []any{makeStudy("NCT00000021", "AstraZeneca"), makeStudy("NCT00000022", "AstraZeneca")},
			}
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	trials := client.FetchAll(context.Background())

	require.Len(t, trials, 3)
	ids := []string{trials[0].NCTID, trials[1].NCTID, trials[2].NCTID}
	assert.Equal(t, []string{"NCT00000020", "NCT00000021", "NCT00000022"}, ids)
}

func TestFetch_FailuresYieldEmptyResult(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		assert.Empty(t, client.FetchSponsorTrials(context.Background()))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "{not json")
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		assert.Empty(t, client.FetchCollaboratorTrials(context.Background()))
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:1"))
		assert.Empty(t, client.FetchSponsorTrials(context.Background()))
	})
}

func TestFetchTrialDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/NCT00000030" {
			_ = json.NewEncoder(w).Encode(makeStudy("NCT00000030", "AstraZeneca"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	record, err := client.FetchTrialDetails(context.Background(), "NCT00000030")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "NCT00000030", record.NCTID)

	// An unknown study is a miss, not an error.
	record, err = client.FetchTrialDetails(context.Background(), "NCT99999999")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFetchTrialDetails_OutageReturnsError(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		record, err := client.FetchTrialDetails(context.Background(), "NCT00000030")
		require.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:1"))
		record, err := client.FetchTrialDetails(context.Background(), "NCT00000030")
		require.Error(t, err)
		assert.Nil(t, record)
	})
}
