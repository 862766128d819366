package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "auth":
		handleAuth(args)
	case "pitch":
		handlePitch(args)
	case "leads":
		handleLeads(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: pitchpoint auth <signup|login|logout|who>")
		return
	}

	subCmd := args[0]
	switch subCmd {
	case "signup":
		signupUser(args[1:])
	case "login":
		loginUser(args[1:])
	case "logout":
		logoutUser()
	case "who":
		whoAmI()
	default:
		fmt.Printf("unknown auth command: %s\n", subCmd)
	}
}

func handlePitch(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: pitchpoint pitch <list|submit|accept|reject>")
		return
	}

	subCmd := args[0]
	switch subCmd {
	case "list":
		listPitches(args[1:])
	case "submit":
		submitPitch(args[1:])
	case "accept":
		transitionPitch(args[1:], "accepted")
	case "reject":
		transitionPitch(args[1:], "rejected")
	default:
		fmt.Printf("unknown pitch command: %s\n", subCmd)
	}
}

func handleLeads(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: pitchpoint leads <investments|community|mentors|contacts|demos>")
		return
	}

	subCmd := args[0]
	switch subCmd {
	case "investments":
		listInvestments()
	case "community":
		listCommunityLeads()
	case "mentors":
		listMentorContacts()
	case "contacts":
		listContactMessages()
	case "demos":
		listDemoRegistrations()
	default:
		fmt.Printf("unknown leads command: %s\n", subCmd)
	}
}

// Auth commands
func signupUser(args []string) {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "user email")
	password := fs.String("password", "", "password")

	fs.Parse(args)

	if *username == "" || *email == "" || *password == "" {
		fmt.Println("Error: username, email, and password are required")
		fs.PrintDefaults()
		return
	}

	payload := map[string]string{
		"username": *username,
		"email":    *email,
		"password": *password,
	}

	data, _ := json.Marshal(payload)
	resp, err := http.Post(getAPIURL()+"/signup", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 200 {
		fmt.Printf("✓ User registered: %s\n", *username)
	} else {
		fmt.Printf("✗ Signup failed: %v\n", result)
	}
}

func loginUser(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")

	fs.Parse(args)

	if *username == "" || *password == "" {
		fmt.Println("Error: username and password are required")
		fs.PrintDefaults()
		return
	}

	payload := map[string]string{"username": *username, "password": *password}
	data, _ := json.Marshal(payload)
	resp, err := http.Post(getAPIURL()+"/login", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 200 {
		if token, ok := result["token"].(string); ok {
			saveToken(token)
			fmt.Printf("✓ Logged in as: %s\n", *username)
		}
	} else {
		fmt.Printf("✗ Login failed: %v\n", result)
	}
}

func logoutUser() {
	os.Remove(tokenFile())
	fmt.Println("✓ Logged out")
}

func whoAmI() {
	token := loadToken()
	if token == "" {
		fmt.Println("Not logged in")
		return
	}
	preview := token
	if len(preview) > 20 {
		preview = preview[:20]
	}
	fmt.Printf("✓ Logged in (token: %s...)\n", preview)
}

// Pitch commands
func listPitches(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "filter by status (pending, accepted, rejected)")
	fs.Parse(args)

	url := getAPIURL() + "/api/pitches"
	if *status != "" {
		url += "?status=" + *status
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var pitches []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&pitches)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tFOUNDER\tSTATUS\tSUBMITTED")
	for _, p := range pitches {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", p["id"], p["company_name"], p["founder_name"], p["status"], p["submitted_at"])
	}
	w.Flush()
}

func submitPitch(args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	company := fs.String("company", "", "company name")
	founder := fs.String("founder", "", "founder name")
	email := fs.String("email", "", "contact email")
	phone := fs.String("phone", "", "contact phone (optional)")
	industry := fs.String("industry", "", "industry")
	stage := fs.String("stage", "", "funding stage")
	funding := fs.String("funding", "", "funding amount sought (optional)")
	team := fs.String("team", "", "team size (optional)")
	summary := fs.String("summary", "", "pitch summary")
	problem := fs.String("problem", "", "problem statement")
	solution := fs.String("solution", "", "proposed solution")
	market := fs.String("market", "", "target market")
	model := fs.String("model", "", "business model")
	competition := fs.String("competition", "", "competition (optional)")

	fs.Parse(args)

	payload := pitchPayload(*company, *founder, *email, *phone, *industry, *stage,
		*funding, *team, *summary, *problem, *solution, *market, *model, *competition)

	for _, field := range requiredPitchFields {
		if payload[field] == "" {
			fmt.Printf("Error: %s is required\n", field)
			fs.PrintDefaults()
			return
		}
	}

	data, _ := json.Marshal(payload)
	resp, err := http.Post(getAPIURL()+"/api/submit-pitch", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 200 {
		fmt.Printf("✓ Pitch submitted: %s\n", *company)
	} else {
		fmt.Printf("✗ Submission failed: %v\n", result)
	}
}

var requiredPitchFields = []string{
	"company_name", "founder_name", "email", "industry", "stage",
	"pitch_summary", "problem_statement", "solution", "target_market", "business_model",
}

// pitchPayload builds the submit-pitch request body with the API's wire names.
func pitchPayload(company, founder, email, phone, industry, stage, funding, team,
	summary, problem, solution, market, model, competition string) map[string]string {
	return map[string]string{
		"company_name":      company,
		"founder_name":      founder,
		"email":             email,
		"phone":             phone,
		"industry":          industry,
		"stage":             stage,
		"funding_amount":    funding,
		"team_size":         team,
		"pitch_summary":     summary,
		"problem_statement": problem,
		"solution":          solution,
		"target_market":     market,
		"business_model":    model,
		"competition":       competition,
	}
}

func transitionPitch(args []string, status string) {
	if len(args) < 1 {
		fmt.Printf("Usage: pitchpoint pitch %s <pitch-id>\n", status[:6])
		return
	}

	payload := map[string]string{"status": status}
	data, _ := json.Marshal(payload)
	req, _ := http.NewRequest("PUT", getAPIURL()+"/api/pitches/"+args[0], bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 200 {
		fmt.Printf("✓ Pitch %s: %s\n", status, args[0])
	} else {
		fmt.Printf("✗ Update failed: %v\n", result)
	}
}

// Lead commands
func listInvestments() {
	rows := fetchList("/api/investments")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTUP\tINVESTOR\tAMOUNT\tCREATED")
	for _, r := range rows {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", r["id"], r["startupName"], r["name"], r["amount"], r["createdAt"])
	}
	w.Flush()
}

func listCommunityLeads() {
	rows := fetchList("/api/community-leads")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tREASON")
	for _, r := range rows {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", r["id"], r["name"], r["email"], r["reason"])
	}
	w.Flush()
}

func listMentorContacts() {
	rows := fetchList("/api/leads")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPROFESSION")
	for _, r := range rows {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", r["id"], r["name"], r["email"], r["profession"])
	}
	w.Flush()
}

func listContactMessages() {
	rows := fetchList("/api/contact")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSUBJECT")
	for _, r := range rows {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", r["id"], r["name"], r["email"], r["subject"])
	}
	w.Flush()
}

func listDemoRegistrations() {
	rows := fetchList("/api/demo-registrations")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTUP\tFOUNDER\tEMAIL")
	for _, r := range rows {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", r["id"], r["startupName"], r["founderName"], r["email"])
	}
	w.Flush()
}

func fetchList(path string) []map[string]interface{} {
	resp, err := http.Get(getAPIURL() + path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}
	defer resp.Body.Close()

	var rows []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&rows)
	return rows
}

// Helper functions
func getAPIURL() string {
	if url := os.Getenv("PITCHPOINT_API"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func tokenFile() string {
	home, _ := os.UserHomeDir()
	return home + "/.pitchpoint/token"
}

func saveToken(token string) error {
	os.MkdirAll(os.Getenv("HOME")+"/.pitchpoint", 0700)
	return os.WriteFile(tokenFile(), []byte(token), 0600)
}

func loadToken() string {
	data, _ := os.ReadFile(tokenFile())
	return string(data)
}

func addAuthHeader(req *http.Request) {
	token := loadToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func printUsage() {
	fmt.Print(`PitchPoint CLI

Usage:
  pitchpoint <command> [options]

Commands:
  auth   User authentication (signup, login, logout, who)
  pitch  Pitch operations (list, submit, accept, reject)
  leads  Lead listings (investments, community, mentors, contacts, demos)
  help   Show this help message

Environment Variables:
  PITCHPOINT_API    API endpoint (default: http://localhost:8080)

Examples:
  pitchpoint auth signup -username admin -email admin@example.com -password pass
  pitchpoint auth login -username admin -password pass
  pitchpoint pitch list -status pending
  pitchpoint pitch accept 3f1c9a2e
  pitchpoint leads investments
`)
}
