package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chordscope/analyzer"
	"chordscope/theory"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr)
	},
}

type analyzeRequest struct {
	Notes    []int `json:"notes"`
	KeyIndex int   `json:"keyIndex"`
}

type keyInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Tonic int    `json:"tonic"`
	Mode  string `json:"mode"`
}

type server struct {
	catalog *theory.Catalog
	an      *analyzer.Analyzer
	log     *logrus.Logger
}

func serve(addr string) error {
	s := &server{
		catalog: theory.NewCatalog(),
		log:     logrus.StandardLogger(),
	}
	s.an = analyzer.New(s.catalog)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	router.HandleFunc("/keys", s.handleKeys).Methods("GET")
	router.Use(s.requestLog)

	s.log.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, cors.Default().Handler(router))
}

// requestLog tags every request with an id and logs its outcome.
func (s *server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"id":     id,
			"method": r.Method,
			"path":   r.URL.Path,
			"took":   time.Since(start),
		}).Info("request")
	})
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	for _, n := range req.Notes {
		if n < 0 || n > 127 {
			http.Error(w, "notes must be MIDI note numbers (0-127)", http.StatusBadRequest)
			return
		}
	}

	// Out-of-range key index falls back to the catalog default.
	key := s.catalog.Get(req.KeyIndex)
	res := s.an.Analyze(req.Notes, key)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *server) handleKeys(w http.ResponseWriter, r *http.Request) {
	keys := make([]keyInfo, 0, s.catalog.Count())
	for i, k := range s.catalog.All() {
		keys = append(keys, keyInfo{Index: i, Name: k.Name, Tonic: k.Tonic, Mode: k.Mode.String()})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(keys)
}
