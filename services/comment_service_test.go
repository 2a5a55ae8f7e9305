package services

import (
	"testing"

	"inkwell/apperror"
	"inkwell/models"
)

func TestListForPostNestsReplies(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	alice := mustUser(t, db, "alice", "alice@example.com")
	bob := mustUser(t, db, "bob", "bob@example.com")
	post := mustPost(t, db, alice, "discussed", true)

	top, err := svc.Create(alice.ID, post.ID, &models.CreateCommentRequest{Content: "top level"})
	if err != nil {
		t.Fatalf("create top-level: %v", err)
	}
	reply, err := svc.Create(bob.ID, post.ID, &models.CreateCommentRequest{
		Content:  "a reply",
		ParentID: &top.ID,
	})
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}

	comments, err := svc.ListForPost(post.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("top level has %d comments, want 1 (reply must not surface)", len(comments))
	}
	got := comments[0]
	if got.ID != top.ID || got.User.Name != "alice" {
		t.Fatalf("unexpected top-level comment: %+v", got)
	}
	if len(got.Replies) != 1 || got.Replies[0].ID != reply.ID {
		t.Fatalf("replies = %+v", got.Replies)
	}
	if got.Replies[0].User.Name != "bob" {
		t.Fatalf("reply author not loaded: %+v", got.Replies[0])
	}
}

func TestListForMissingPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	if _, err := svc.ListForPost(999); !apperror.Is(err, apperror.NotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestCreateRejectsMissingParent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	alice := mustUser(t, db, "alice", "alice@example.com")
	post := mustPost(t, db, alice, "here", true)

	missing := uint(12345)
	_, err := svc.Create(alice.ID, post.ID, &models.CreateCommentRequest{
		Content:  "orphan",
		ParentID: &missing,
	})
	if !apperror.Is(err, apperror.Validation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestCommentOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	alice := mustUser(t, db, "alice", "alice@example.com")
	bob := mustUser(t, db, "bob", "bob@example.com")
	post := mustPost(t, db, alice, "here", true)

	comment, err := svc.Create(alice.ID, post.ID, &models.CreateCommentRequest{Content: "hers"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(comment.ID, bob.ID, &models.UpdateCommentRequest{Content: "his now"}); !apperror.Is(err, apperror.Forbidden) {
		t.Fatalf("update by non-owner: want forbidden, got %v", err)
	}
	if err := svc.Delete(comment.ID, bob.ID); !apperror.Is(err, apperror.Forbidden) {
		t.Fatalf("delete by non-owner: want forbidden, got %v", err)
	}

	updated, err := svc.Update(comment.ID, alice.ID, &models.UpdateCommentRequest{Content: "edited"})
	if err != nil {
		t.Fatalf("update by owner: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content = %q", updated.Content)
	}
}

func TestDeleteCascadesNestedReplies(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	alice := mustUser(t, db, "alice", "alice@example.com")
	bob := mustUser(t, db, "bob", "bob@example.com")
	post := mustPost(t, db, alice, "here", true)

	top, err := svc.Create(alice.ID, post.ID, &models.CreateCommentRequest{Content: "top"})
	if err != nil {
		t.Fatalf("create top: %v", err)
	}
	reply, err := svc.Create(bob.ID, post.ID, &models.CreateCommentRequest{Content: "reply", ParentID: &top.ID})
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}
	// Replies-of-replies are stored even though the UI renders one level.
	if _, err := svc.Create(alice.ID, post.ID, &models.CreateCommentRequest{Content: "grand", ParentID: &reply.ID}); err != nil {
		t.Fatalf("create nested reply: %v", err)
	}

	if err := svc.Delete(top.ID, alice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var survivors []models.Comment
	if err := db.Find(&survivors).Error; err != nil {
		t.Fatalf("scan comments: %v", err)
	}
	if len(survivors) != 0 {
		t.Fatalf("%d comments survived, want 0: %+v", len(survivors), survivors)
	}

	// No comment anywhere may reference a deleted parent.
	var dangling int64
	err = db.Model(&models.Comment{}).
		Where("parent_id IS NOT NULL AND parent_id NOT IN (SELECT id FROM comments)").
		Count(&dangling).Error
	if err != nil {
		t.Fatalf("count dangling: %v", err)
	}
	if dangling != 0 {
		t.Fatalf("%d comments have a dangling parent_id", dangling)
	}
}

func TestDeleteCascadesReplies(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	alice := mustUser(t, db, "alice", "alice@example.com")
	bob := mustUser(t, db, "bob", "bob@example.com")
	post := mustPost(t, db, alice, "here", true)

	top, err := svc.Create(alice.ID, post.ID, &models.CreateCommentRequest{Content: "top"})
	if err != nil {
		t.Fatalf("create top: %v", err)
	}
	if _, err := svc.Create(bob.ID, post.ID, &models.CreateCommentRequest{Content: "reply", ParentID: &top.ID}); err != nil {
		t.Fatalf("create reply: %v", err)
	}

	if err := svc.Delete(top.ID, alice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d comments left, want 0 (replies cascade)", count)
	}
}
