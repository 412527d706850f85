package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	WorkshopsDBPath          string `mapstructure:"WORKSHOPS_DB_PATH"`
	ParticipantsPath         string `mapstructure:"PARTICIPANTS_PATH"`
	DefaultSeats             int    `mapstructure:"DEFAULT_SEATS"`
	DiscordBotToken          string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordAnnounceChannelID string `mapstructure:"DISCORD_ANNOUNCE_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("WORKSHOPS_DB_PATH", "oficinas.db")
	viper.SetDefault("PARTICIPANTS_PATH", "participantes.dat")
	viper.SetDefault("DEFAULT_SEATS", 20)

	viper.BindEnv("WORKSHOPS_DB_PATH")
	viper.BindEnv("PARTICIPANTS_PATH")
	viper.BindEnv("DEFAULT_SEATS")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_ANNOUNCE_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
