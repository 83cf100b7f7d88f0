package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"collabhub/internal/config"
	"collabhub/internal/theme"
)

func cmdInit(args []string) error {
	fs := newFlagSetOnly("init")
	path := fs.String("path", defaultConfigPath, "path to write config")
	_ = fs.Parse(args)
	if err := config.Save(*path, config.Default()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
	return nil
}

func cmdLogin(args []string) error {
	fs, cfgPath := newFlags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	if !a.session.Login(*email, *password) {
		return errors.New("invalid email or password")
	}
	fmt.Println("Logged in as", *email)
	return nil
}

func cmdLogout(args []string) error {
	fs, cfgPath := newFlags("logout")
	_ = fs.Parse(args)
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	a.session.Logout()
	fmt.Println("Logged out")
	return nil
}
