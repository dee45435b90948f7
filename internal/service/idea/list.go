package idea

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// ListByMember returns the ideas authored by the member with the given email,
// enriched with category, author and vote count.
func (s *Service) ListByMember(ctx context.Context, email string) ([]domain.IdeaView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	author, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	ideas, err := s.ideas.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("list ideas by author: %w", err)
	}

	return s.views(ctx, ideas, false)
}

// ListPublished returns all published ideas with their full comment threads.
func (s *Service) ListPublished(ctx context.Context) ([]domain.IdeaView, error) {
	ideas, err := s.ideas.ListByStatus(ctx, domain.IdeaStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("list published ideas: %w", err)
	}

	return s.views(ctx, ideas, true)
}

// views enriches ideas with one batched lookup per relation.
func (s *Service) views(ctx context.Context, ideas []domain.Idea, withComments bool) ([]domain.IdeaView, error) {
	views := make([]domain.IdeaView, 0, len(ideas))
	if len(ideas) == 0 {
		return views, nil
	}

	categoryIDs := make([]int64, len(ideas))
	authorIDs := make([]int64, len(ideas))
	ideaIDs := make([]int64, len(ideas))
	for i, idea := range ideas {
		categoryIDs[i] = idea.CategoryID
		authorIDs[i] = idea.AuthorMemberID
		ideaIDs[i] = idea.ID
	}

	categories, err := s.loader.Categories(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	authors, err := s.loader.Members(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	tallies, err := s.loader.Tallies(ctx, ideaIDs)
	if err != nil {
		return nil, fmt.Errorf("load tallies: %w", err)
	}

	var comments map[int64][]domain.Comment
	if withComments {
		comments, err = s.loader.Comments(ctx, ideaIDs)
		if err != nil {
			return nil, fmt.Errorf("load comments: %w", err)
		}
	}

	for _, idea := range ideas {
		author := authors[idea.AuthorMemberID]
		view := domain.IdeaView{
			Idea:     idea,
			Category: categories[idea.CategoryID],
			Author:   domain.AuthorRef{MemberID: author.ID, Name: author.DisplayName()},
			Likes:    tallies[idea.ID],
		}
		if withComments {
			view.Comments = s.threads.Assemble(ctx, idea.ID, comments[idea.ID])
		}
		views = append(views, view)
	}

	return views, nil
}
