// File: fixnow/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fixnow/api"
	"fixnow/config"
	"fixnow/models"
	"fixnow/services/location"
	"fixnow/services/registration"
	"fixnow/services/search"
	"fixnow/services/session"
	"fixnow/storage"
	"fixnow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := openStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open session storage: %v", err)
	}

	transport := &api.AuthTransport{
		DeviceID: api.DeviceID(store),
		Redirect: func() {
			fmt.Println("Your session has expired. Please log in again.")
		},
	}
	client := api.NewClient(
		config.AppConfig.APIBaseURL,
		transport,
		time.Duration(config.AppConfig.HTTPTimeoutSecs)*time.Second,
	)
	sessions := session.NewManager(store, client)
	transport.Session = sessions

	geocoder := api.NewGeocoder(
		config.AppConfig.GeocodeURL,
		time.Duration(config.AppConfig.GeoTimeoutSecs)*time.Second,
	)
	locations := location.NewService(
		config.AppConfig.GeoLookupURL,
		time.Duration(config.AppConfig.GeoTimeoutSecs)*time.Second,
		geocoder,
	)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "register":
		err = runRegister(ctx, client, locations)
	case "login":
		err = runLogin(ctx, sessions)
	case "logout":
		err = sessions.Clear()
		if err == nil {
			fmt.Println("Logged out.")
		}
	case "whoami":
		err = runWhoami(sessions)
	case "dashboard":
		err = runDashboard(ctx, sessions, client)
	case "search":
		err = runSearch(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openStore() (storage.Store, error) {
	if config.AppConfig.StorageBackend == "redis" {
		return storage.NewRedisStore(
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
			config.AppConfig.RedisSessionDB,
		)
	}
	return storage.NewFileStore(config.AppConfig.StoragePath)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: fixnow <command>

Commands:
  register   register as a service provider (interactive)
  login      log in as a seeker or provider
  logout     clear the stored session
  whoami     show the stored session
  dashboard  show the provider dashboard
  search     search providers (e.g. fixnow search plumber electrician --emergency)`)
}

// runRegister drives the three-step wizard on the terminal. Navigation is
// the wizard's: an invalid step keeps the user on it with the errors shown.
func runRegister(ctx context.Context, client *api.Client, locations *location.Service) error {
	engine := registration.NewEngine(client)
	in := bufio.NewReader(os.Stdin)

	for engine.Status() == registration.StatusEditing {
		step := engine.CurrentStep()
		fmt.Printf("\n-- Step %d of 3: %s --\n", step, step)

		switch step {
		case registration.StepPersonalInfo:
			promptString(in, engine, registration.FieldFullName, "Full name")
			promptString(in, engine, registration.FieldPhoneNumber, "Phone number")
			promptString(in, engine, registration.FieldEmail, "Email")
			promptString(in, engine, registration.FieldPassword, "Password")
			promptString(in, engine, registration.FieldConfirmPassword, "Confirm password")
		case registration.StepServiceInfo:
			promptServiceTypes(in, engine)
			promptString(in, engine, registration.FieldBusinessName, "Business name")
			promptFloat(in, engine, registration.FieldHourlyRate, "Hourly rate")
			promptString(in, engine, registration.FieldDescription, "Description (optional)")
			promptString(in, engine, registration.FieldExperience, "Experience (optional)")
		case registration.StepLocationAvailability:
			fillLocation(ctx, in, engine, locations)
			promptString(in, engine, registration.FieldAddress, "Address")
			promptString(in, engine, registration.FieldAvailableHours, "Available hours (e.g. 8:00 AM - 6:00 PM)")
			promptBool(in, engine, registration.FieldEmergencySupport, "Offer emergency support? (y/n)")
		}

		if err := engine.Advance(ctx); err != nil {
			fmt.Println("Submission failed:", err)
			continue
		}
		printFieldErrors(engine)
	}

	if engine.Status() == registration.StatusSucceeded {
		fmt.Println("\nProvider profile created. You can now log in.")
	}
	return nil
}

func printFieldErrors(engine *registration.Engine) {
	errs := engine.Errors()
	if len(errs) == 0 {
		return
	}
	fmt.Println("Please fix the following:")
	for field, msg := range errs {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}

func promptString(in *bufio.Reader, engine *registration.Engine, field registration.Field, label string) {
	fmt.Printf("%s: ", label)
	line, _ := in.ReadString('\n')
	_ = engine.UpdateField(field, strings.TrimRight(line, "\r\n"))
}

func promptFloat(in *bufio.Reader, engine *registration.Engine, field registration.Field, label string) {
	fmt.Printf("%s: ", label)
	line, _ := in.ReadString('\n')
	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		value = 0
	}
	_ = engine.UpdateField(field, value)
}

func promptBool(in *bufio.Reader, engine *registration.Engine, field registration.Field, label string) {
	fmt.Printf("%s: ", label)
	line, _ := in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	_ = engine.UpdateField(field, answer == "y" || answer == "yes")
}

func promptServiceTypes(in *bufio.Reader, engine *registration.Engine) {
	fmt.Printf("Service types %v\n", models.ServiceTypes)
	fmt.Print("Select (comma separated): ")
	line, _ := in.ReadString('\n')
	var selected []models.ServiceType
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			selected = append(selected, models.ServiceType(part))
		}
	}
	_ = engine.UpdateField(registration.FieldServiceTypes, selected)
}

// fillLocation offers to pre-fill the address from the IP-based position.
// Lookup failure is reported inline and never blocks the step.
func fillLocation(ctx context.Context, in *bufio.Reader, engine *registration.Engine, locations *location.Service) {
	fmt.Print("Detect your location automatically? (y/n): ")
	line, _ := in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return
	}
	pos, address, err := locations.CurrentPositionWithAddress(ctx)
	if err != nil {
		fmt.Println("Could not detect location:", err)
		return
	}
	_ = engine.UpdateField(registration.FieldLatitude, pos.Latitude)
	_ = engine.UpdateField(registration.FieldLongitude, pos.Longitude)
	fmt.Println("Detected:", address)
}

func runLogin(ctx context.Context, sessions *session.Manager) error {
	in := bufio.NewReader(os.Stdin)

	fmt.Print("Role (seeker/provider): ")
	line, _ := in.ReadString('\n')
	role := models.RoleServiceSeeker
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "p") {
		role = models.RoleServiceProviders
	}

	fmt.Print("Email: ")
	email, _ := in.ReadString('\n')
	fmt.Print("Password: ")
	password, _ := in.ReadString('\n')

	resp, err := sessions.Login(ctx, strings.TrimSpace(email), strings.TrimRight(password, "\r\n"), role)
	if err != nil {
		return err
	}
	if err := sessions.Persist(resp); err != nil {
		return err
	}
	fmt.Printf("Welcome back, %s!\n", resp.User.Name)
	return nil
}

func runWhoami(sessions *session.Manager) error {
	state := sessions.Restore()
	if !state.IsAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", state.User.Name, state.User.Email, state.User.Role)
	if claims, err := sessions.TokenClaims(); err == nil && !claims.ExpiresAt.IsZero() {
		fmt.Printf("Session expires %s\n", claims.ExpiresAt.Format(time.RFC1123))
	}
	return nil
}

func runDashboard(ctx context.Context, sessions *session.Manager, client *api.Client) error {
	state := sessions.Restore()
	if !state.IsAuthenticated {
		return fmt.Errorf("not logged in")
	}

	fmt.Printf("Welcome back, %s!\n\n", state.User.Name)

	providers, err := client.GetAllProviders(ctx)
	if err != nil {
		return err
	}
	for _, p := range providers {
		if !strings.EqualFold(p.FullName, state.User.Name) && p.ID != state.User.ID {
			continue
		}
		fmt.Println("Business:   ", p.BusinessName)
		fmt.Println("Services:   ", p.ServiceTypes)
		fmt.Println("Address:    ", p.Address)
		fmt.Println("Hours:      ", p.AvailableHours)
		fmt.Printf("Rating:      %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
		fmt.Printf("Hourly rate: %.2f\n", p.HourlyRate)
		return nil
	}
	fmt.Println("No provider profile found for this account.")
	return nil
}

func runSearch(ctx context.Context, client *api.Client, args []string) error {
	req := models.ServiceRequest{Radius: 10}
	for _, arg := range args {
		if arg == "--emergency" {
			req.IsEmergency = true
			continue
		}
		req.ServiceTypes = append(req.ServiceTypes, models.ServiceType(arg))
	}

	results, err := search.NewService(client).Search(ctx, req)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No providers found.")
		return nil
	}
	for _, p := range results {
		line := fmt.Sprintf("%-20s %-15v %8.2f/hr  ★%.1f", p.FullName, p.ServiceTypes, p.HourlyRate, p.Rating)
		if p.Distance > 0 {
			line += fmt.Sprintf("  (%.1f km away)", p.Distance)
		}
		if p.EmergencySupport {
			line += "  [emergency]"
		}
		fmt.Println(line)
	}
	return nil
}
