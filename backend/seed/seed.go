// Package seed loads the constitutional syllabus, sample learning content
// and the initial badge set. All writes are idempotent upserts keyed by
// Topic.CustomID, Content title and Badge name, so the command can be run
// repeatedly; -dry-run logs intended writes without applying them.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"samvidhan-sarathi/backend/models"

	"gorm.io/gorm"
)

type Seeder struct {
	DB     *gorm.DB
	Logger *log.Logger
	DryRun bool
}

func Run(db *gorm.DB, logger *log.Logger, dryRun bool) error {
	s := &Seeder{DB: db, Logger: logger, DryRun: dryRun}

	topicIDs, err := s.seedTopics()
	if err != nil {
		return err
	}
	if err := s.seedContent(topicIDs); err != nil {
		return err
	}
	if err := s.seedBadges(); err != nil {
		return err
	}

	if dryRun {
		s.Logger.Println("dry run complete, no changes applied")
	} else {
		s.Logger.Println("seed complete")
	}
	return nil
}

func (s *Seeder) seedTopics() (map[string]uint, error) {
	ids := make(map[string]uint, len(seedTopics))
	for _, topic := range seedTopics {
		var existing models.Topic
		err := s.DB.Where("custom_id = ?", topic.CustomID).First(&existing).Error
		switch {
		case err == nil:
			s.Logger.Printf("topic %q exists, updating", topic.Title)
			if !s.DryRun {
				topic.ID = existing.ID
				if err := s.DB.Save(&topic).Error; err != nil {
					return nil, fmt.Errorf("update topic %q: %w", topic.Title, err)
				}
			}
			ids[topic.CustomID] = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.Logger.Printf("adding topic %q", topic.Title)
			if !s.DryRun {
				if err := s.DB.Create(&topic).Error; err != nil {
					return nil, fmt.Errorf("create topic %q: %w", topic.Title, err)
				}
			}
			ids[topic.CustomID] = topic.ID
		default:
			return nil, err
		}
	}
	return ids, nil
}

func (s *Seeder) seedContent(topicIDs map[string]uint) error {
	for _, item := range seedContent() {
		topicID, ok := topicIDs[item.topicCustomID]
		if !ok {
			return fmt.Errorf("content %q references unknown topic %q", item.content.Title, item.topicCustomID)
		}
		item.content.TopicID = topicID

		var existing models.Content
		err := s.DB.Where("title = ?", item.content.Title).First(&existing).Error
		switch {
		case err == nil:
			s.Logger.Printf("content %q exists, updating", item.content.Title)
			if s.DryRun {
				continue
			}
			item.content.ID = existing.ID
			if err := s.DB.Save(&item.content).Error; err != nil {
				return fmt.Errorf("update content %q: %w", item.content.Title, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.Logger.Printf("adding content %q", item.content.Title)
			if s.DryRun {
				continue
			}
			if err := s.DB.Create(&item.content).Error; err != nil {
				return fmt.Errorf("create content %q: %w", item.content.Title, err)
			}
		default:
			return err
		}

		if err := s.seedQuestions(item.content.ID, item.questions); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedQuestions(contentID uint, questions []seedQuestion) error {
	for i, q := range questions {
		options, err := json.Marshal(q.options)
		if err != nil {
			return fmt.Errorf("encode options for question %q: %w", q.text, err)
		}

		var existing models.Question
		err = s.DB.Where("content_id = ? AND text = ?", contentID, q.text).First(&existing).Error
		switch {
		case err == nil:
			if s.DryRun {
				continue
			}
			existing.Options = string(options)
			existing.SequenceOrder = i + 1
			if err := s.DB.Save(&existing).Error; err != nil {
				return fmt.Errorf("update question %q: %w", q.text, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.Logger.Printf("adding question %q", q.text)
			if s.DryRun {
				continue
			}
			question := models.Question{
				ContentID:     contentID,
				Text:          q.text,
				Options:       string(options),
				SequenceOrder: i + 1,
			}
			if err := s.DB.Create(&question).Error; err != nil {
				return fmt.Errorf("create question %q: %w", q.text, err)
			}
		default:
			return err
		}
	}
	return nil
}

func (s *Seeder) seedBadges() error {
	for _, b := range seedBadges() {
		var existing models.Badge
		err := s.DB.Where("name = ?", b.Name).First(&existing).Error
		switch {
		case err == nil:
			s.Logger.Printf("badge %q exists, updating", b.Name)
			if !s.DryRun {
				b.ID = existing.ID
				if err := s.DB.Save(&b).Error; err != nil {
					return fmt.Errorf("update badge %q: %w", b.Name, err)
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.Logger.Printf("adding badge %q", b.Name)
			if !s.DryRun {
				if err := s.DB.Create(&b).Error; err != nil {
					return fmt.Errorf("create badge %q: %w", b.Name, err)
				}
			}
		default:
			return err
		}
	}
	return nil
}
