package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"password,omitempty" bson:"password"`
	Bio      string             `json:"bio" bson:"bio"`
	PhotoURL string             `json:"photoURL" bson:"photoURL"`
	Location string             `json:"location" bson:"location"`

	SelectedRole    string `json:"selectedRole" bson:"selectedRole"`
	CustomRole      string `json:"customRole,omitempty" bson:"customRole,omitempty"`
	ExperienceLevel string `json:"experienceLevel" bson:"experienceLevel"`
	Company         string `json:"company,omitempty" bson:"company,omitempty"`

	KnownSkills      []SkillExperience `json:"knownSkills" bson:"knownSkills"`
	CurrentLearnings []CurrentLearning `json:"currentLearnings" bson:"currentLearnings"`
	CompletedSkills  []SkillExperience `json:"completedSkills" bson:"completedSkills"`
	Interests        []string          `json:"interests" bson:"interests"`

	Projects []Project `json:"projects" bson:"projects"`
	Doubts   []Doubt   `json:"doubts" bson:"doubts"`

	Connections []ConnectionEdge `json:"connections" bson:"connections"`

	Videos []Video `json:"videos" bson:"videos"`

	SocialProfiles SocialProfiles `json:"socialProfiles" bson:"socialProfiles"`

	Tokens             int       `json:"tokens" bson:"tokens"`
	Certificates       []string  `json:"certificates" bson:"certificates"`
	OnboardingComplete bool      `json:"onboardingComplete" bson:"onboardingComplete"`
	IsActive           bool      `json:"isActive" bson:"isActive"`
	LastActiveAt       time.Time `json:"lastActiveAt" bson:"lastActiveAt"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UserDto is the trimmed user shape returned inside listings and matches.
type UserDto struct {
	Id              primitive.ObjectID `json:"_id" bson:"_id"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	SelectedRole    string             `json:"selectedRole" bson:"selectedRole"`
	ExperienceLevel string             `json:"experienceLevel" bson:"experienceLevel"`
	Bio             string             `json:"bio" bson:"bio"`
	PhotoURL        string             `json:"photoURL" bson:"photoURL"`
	KnownSkills     []SkillExperience  `json:"knownSkills" bson:"knownSkills"`
	Location        string             `json:"location" bson:"location"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	LastActiveAt    time.Time          `json:"lastActiveAt" bson:"lastActiveAt"`
	SocialProfiles  SocialProfiles     `json:"socialProfiles" bson:"socialProfiles"`
}

type SkillExperience struct {
	Skill      string `json:"skill" bson:"skill"`
	Experience string `json:"experience" bson:"experience"` // beginner, intermediate, experienced, expert
}

type CurrentLearning struct {
	Id         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Skill      string             `json:"skill" bson:"skill"`
	Level      string             `json:"level" bson:"level"` // beginner, intermediate, advanced
	Progress   int                `json:"progress" bson:"progress"`
	StartDate  time.Time          `json:"startDate" bson:"startDate"`
	TargetDate *time.Time         `json:"targetDate,omitempty" bson:"targetDate,omitempty"`
}

type Project struct {
	Id            primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title         string               `json:"title" bson:"title"`
	Description   string               `json:"description" bson:"description"`
	Status        string               `json:"status" bson:"status"` // planning, active, completed, on-hold
	Technologies  []string             `json:"technologies" bson:"technologies"`
	Github        string               `json:"github,omitempty" bson:"github,omitempty"`
	LiveUrl       string               `json:"liveUrl,omitempty" bson:"liveUrl,omitempty"`
	Collaborators []primitive.ObjectID `json:"collaborators" bson:"collaborators"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type Doubt struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Tags        []string           `json:"tags" bson:"tags"`
	Status      string             `json:"status" bson:"status"` // open, in-progress, resolved
	Responses   []DoubtResponse    `json:"responses" bson:"responses"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type DoubtResponse struct {
	User      primitive.ObjectID `json:"user" bson:"user"`
	Response  string             `json:"response" bson:"response"`
	Helpful   int                `json:"helpful" bson:"helpful"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type SocialProfiles struct {
	Github    string `json:"github,omitempty" bson:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
}

// Dto returns the listing projection of the user.
func (u *User) Dto() UserDto {
	return UserDto{
		Id:              u.Id,
		Name:            u.Name,
		Email:           u.Email,
		SelectedRole:    u.SelectedRole,
		ExperienceLevel: u.ExperienceLevel,
		Bio:             u.Bio,
		PhotoURL:        u.PhotoURL,
		KnownSkills:     u.KnownSkills,
		Location:        u.Location,
		IsActive:        u.IsActive,
		LastActiveAt:    u.LastActiveAt,
		SocialProfiles:  u.SocialProfiles,
	}
}

// SkillSet returns the user's known skill names, lower-cased, as a set.
// Skill names are stored as typed but compared case-insensitively.
func (u *User) SkillSet() map[string]bool {
	set := make(map[string]bool, len(u.KnownSkills))
	for _, s := range u.KnownSkills {
		set[strings.ToLower(s.Skill)] = true
	}
	return set
}

// FindVideo returns the embedded video with the given id, or nil.
func (u *User) FindVideo(id primitive.ObjectID) *Video {
	for i := range u.Videos {
		if u.Videos[i].Id == id {
			return &u.Videos[i]
		}
	}
	return nil
}

// FindLearning returns the embedded current learning with the given id, or nil.
func (u *User) FindLearning(id primitive.ObjectID) *CurrentLearning {
	for i := range u.CurrentLearnings {
		if u.CurrentLearnings[i].Id == id {
			return &u.CurrentLearnings[i]
		}
	}
	return nil
}

// FindProject returns the embedded project with the given id, or nil.
func (u *User) FindProject(id primitive.ObjectID) *Project {
	for i := range u.Projects {
		if u.Projects[i].Id == id {
			return &u.Projects[i]
		}
	}
	return nil
}
