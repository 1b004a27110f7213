package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"jandarpan/backend/internal/grievance"
	"jandarpan/backend/internal/models"
	"jandarpan/backend/internal/notify"
	"jandarpan/backend/internal/storage"
)

func main() {
	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "grievances.json"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	store := storage.NewStorageService(dataFile, uploadDir)
	svc := grievance.NewService(store, notify.NoopNotifier{}, zap.NewNop())

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list [status], update-status <id> <status>, track <name>, sweep")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		status := ""
		if len(os.Args) > 2 {
			status = os.Args[2]
		}
		rows, err := svc.Dashboard(status, nil)
		if err != nil {
			log.Fatalf("Error listing grievances: %v", err)
		}
		if len(rows) == 0 {
			fmt.Println("No grievances available yet.")
			return
		}
		for _, row := range rows {
			fmt.Printf("%s  %-12s  %-11s  pri=%-3d  %s  %s\n",
				row.ID, row.Category, row.Status, row.Priority, row.Name, row.SuggestedAction)
		}
	case "update-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin update-status <id> <status>")
			os.Exit(1)
		}
		status, err := models.ParseStatus(os.Args[3])
		if err != nil {
			fmt.Println("Invalid status. Use Pending, Resolved or Escalated.")
			os.Exit(1)
		}
		g, escalated, err := svc.UpdateStatus(os.Args[2], status)
		if err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("Status updated to %s for ID %s.\n", g.Status, g.ID)
		if escalated {
			fmt.Println("Grievance was auto-escalated (pending too long).")
		}
	case "track":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin track <name>")
			os.Exit(1)
		}
		records, err := svc.Track(os.Args[2])
		if err != nil {
			log.Fatalf("Error searching records: %v", err)
		}
		if len(records) == 0 {
			fmt.Println("No records found.")
			return
		}
		for _, g := range records {
			fmt.Printf("%s  %-12s  %-11s  pri=%-3d  %s\n", g.ID, g.Category, g.Status, g.Priority, g.Date)
		}
	case "sweep":
		if err := sweep(store); err != nil {
			log.Fatalf("Error sweeping grievances: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

// sweep applies the escalation rule across the whole collection. It is an
// explicit staff action, the CLI counterpart of touching every record.
func sweep(store storage.Storage) error {
	grievances, err := store.LoadGrievances()
	if err != nil {
		return err
	}

	escalated := 0
	today := time.Now()
	for i := range grievances {
		fired, err := grievance.AutoEscalate(&grievances[i], today)
		if err != nil {
			return err
		}
		if fired {
			escalated++
			fmt.Printf("Escalated %s (pending since %s).\n", grievances[i].ID, grievances[i].Date)
		}
	}

	if escalated == 0 {
		fmt.Println("No grievances needed escalation.")
		return nil
	}
	if err := store.SaveGrievances(grievances); err != nil {
		return err
	}
	fmt.Printf("%d grievance(s) escalated.\n", escalated)
	return nil
}
