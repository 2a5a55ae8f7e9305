package services

import (
	"testing"

	"inkwell/models"
)

func TestProfileStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	alice := mustUser(t, db, "alice", "alice@example.com")
	bob := mustUser(t, db, "bob", "bob@example.com")
	alicePost := mustPost(t, db, alice, "alice's", true)
	bobPost := mustPost(t, db, bob, "bob's", true)

	comments := []models.Comment{
		// On someone else's post: counts as a contribution.
		{Content: "nice", UserID: bob.ID, PostID: alicePost.ID},
		{Content: "thanks", UserID: bob.ID, PostID: alicePost.ID},
		// On bob's own post: total only.
		{Content: "self note", UserID: bob.ID, PostID: bobPost.ID},
	}
	for i := range comments {
		if err := db.Create(&comments[i]).Error; err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	profile, err := svc.Profile(bob.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.TotalComments != 3 {
		t.Fatalf("total_comments = %d, want 3", profile.TotalComments)
	}
	if profile.Contributions != 2 {
		t.Fatalf("contributions = %d, want 2", profile.Contributions)
	}
	if profile.User.ID != bob.ID {
		t.Fatalf("profile user = %d, want %d", profile.User.ID, bob.ID)
	}

	// A user with no comments has zeroed stats.
	empty, err := svc.Profile(alice.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if empty.TotalComments != 0 || empty.Contributions != 0 {
		t.Fatalf("alice stats = %+v, want zeros", empty)
	}
}
