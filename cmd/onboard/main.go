// Command onboard runs the signup questionnaire in the terminal against a
// running CoachConnect API server. It walks the same state machine the web
// wizard uses: credentials, role, basics, role details, preferences, then a
// single submit that creates the account and posts the profile.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coachconnect/backend/internal/identity"
	"github.com/coachconnect/backend/internal/models"
	"github.com/coachconnect/backend/internal/wizard"
)

func main() {
	baseURL := getEnv("API_BASE_URL", "http://localhost:5000")
	apiKey := os.Getenv("FIREBASE_API_KEY")

	var provider identity.Provider
	if apiKey != "" {
		provider = identity.NewFirebaseProvider(apiKey)
	} else {
		log.Println("FIREBASE_API_KEY not set, using local accounts")
		provider = identity.NewLocalProvider(getEnv("JWT_SECRET", "dev-secret"), 24*time.Hour)
	}

	w := wizard.New(provider, wizard.NewClient(baseURL))
	in := bufio.NewScanner(os.Stdin)

	for {
		switch w.Step() {
		case wizard.StepCredentials:
			fmt.Println("\n-- Welcome to CoachConnect --")
			d := w.Draft()
			d.Email = prompt(in, "Email address")
			d.Password = prompt(in, "Password (min 6 characters)")
			d.ConfirmPassword = prompt(in, "Confirm password")
			if err := w.Next(); err != nil {
				fmt.Println("!", err)
			}

		case wizard.StepRoleSelect:
			fmt.Println("\n-- Choose your path --")
			fmt.Println("  1) Find a coach (client)")
			fmt.Println("  2) Become a coach")
			switch prompt(in, "Choice") {
			case "1":
				_ = w.SelectRole(models.UserTypeClient)
			case "2":
				_ = w.SelectRole(models.UserTypeCoach)
			default:
				fmt.Println("! choose 1 or 2")
			}

		case wizard.StepBasicInfo:
			fmt.Println("\n-- Tell us about yourself --")
			d := w.Draft()
			d.FullName = prompt(in, "Full name")
			d.Location = prompt(in, "Location (City, State)")
			if w.UserType() == models.UserTypeClient {
				d.Company = prompt(in, "Company name")
				d.Role = prompt(in, "Your role (e.g. CEO, Manager)")
			} else {
				d.Title = prompt(in, "Professional title (e.g. Executive Coach)")
			}
			if err := w.Next(); err != nil {
				fmt.Println("!", err)
			}

		case wizard.StepRoleDetails:
			if w.UserType() == models.UserTypeClient {
				fmt.Println("\n-- What are your goals? --")
			} else {
				fmt.Println("\n-- Your coaching specialties --")
			}
			opts := w.Options()
			for i, opt := range opts {
				fmt.Printf("  %d) %s\n", i+1, opt.Label)
			}
			fmt.Println("Toggle by number; enter to continue, b to go back")
			for {
				line := prompt(in, ">")
				if line == "" {
					if err := w.Next(); err != nil {
						fmt.Println("!", err)
						continue
					}
					break
				}
				if line == "b" {
					w.Back()
					break
				}
				n, err := strconv.Atoi(line)
				if err != nil || n < 1 || n > len(opts) {
					fmt.Println("! unknown option")
					continue
				}
				w.Toggle(opts[n-1].ID)
			}

		case wizard.StepPreferences:
			fmt.Println("\n-- Final details (all optional) --")
			d := w.Draft()
			if w.UserType() == models.UserTypeClient {
				d.Budget = prompt(in, "Budget range (e.g. 200-300)")
				d.Timeline = prompt(in, "When would you like to start?")
				d.Industry = prompt(in, "Your industry")
			} else {
				d.HourlyRate = prompt(in, "Hourly rate (e.g. 200-300)")
				d.Experience = prompt(in, "Years of coaching experience")
				if raw := prompt(in, "Industries you serve (comma separated)"); raw != "" {
					d.Industries = splitTags(raw)
				}
			}

			redirect, err := w.Submit(context.Background())
			if err != nil {
				fmt.Println("!", w.Err())
				continue
			}
			fmt.Printf("\n✅ Account created! Continue at %s\n", redirect)
			return

		default:
			return
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
